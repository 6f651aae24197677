// internal/workers/guidance/generate-roadmap/config.go
package generateroadmap

import "time"

type Config struct {
	Timeout time.Duration
	// MaxCourses caps beginner course suggestions per roadmap.
	MaxCourses int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    10 * time.Second,
		MaxCourses: 4,
	}
}
