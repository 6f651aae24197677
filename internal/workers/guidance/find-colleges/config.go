// internal/workers/guidance/find-colleges/config.go
package findcolleges

import "time"

type Config struct {
	Timeout    time.Duration
	MaxResults int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    10 * time.Second,
		MaxResults: 5,
	}
}
