// internal/workers/assessment/classify-personality/config.go
package classifypersonality

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
