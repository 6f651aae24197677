// internal/models/personality.go
package models

// BigFiveTraits are the five continuously-scored trait dimensions, each 0-1.
type BigFiveTraits struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// PersonalityProfile is the classifier output: a 4-letter MBTI code plus the
// Big Five trait vector.
type PersonalityProfile struct {
	MBTIType string        `json:"mbtiType"`
	BigFive  BigFiveTraits `json:"bigFive"`
}
