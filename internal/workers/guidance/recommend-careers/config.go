// internal/workers/guidance/recommend-careers/config.go
package recommendcareers

import "time"

// MatchWeights blends the five sub-scores into the final match percentage.
type MatchWeights struct {
	Skill       float64
	Personality float64
	Academic    float64
	Interest    float64
	Aptitude    float64
}

func (w MatchWeights) Sum() float64 {
	return w.Skill + w.Personality + w.Academic + w.Interest + w.Aptitude
}

type Config struct {
	Timeout     time.Duration
	DefaultTopN int
	Weights     MatchWeights
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     10 * time.Second,
		DefaultTopN: 5,
		Weights: MatchWeights{
			Skill:       0.35,
			Personality: 0.25,
			Academic:    0.20,
			Interest:    0.15,
			Aptitude:    0.05,
		},
	}
}
