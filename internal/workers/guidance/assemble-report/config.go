// internal/workers/guidance/assemble-report/config.go
package assemblereport

import "time"

type Config struct {
	Timeout time.Duration
	// HistorySize is how many past reports are kept per student.
	HistorySize int
	// MaxCareers and MaxColleges cap the merged report sections.
	MaxCareers  int
	MaxColleges int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     15 * time.Second,
		HistorySize: 10,
		MaxCareers:  5,
		MaxColleges: 5,
	}
}
