// internal/workers/assessment/analyze-skills/config.go
package analyzeskills

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
