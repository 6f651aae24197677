// internal/workers/guidance/forecast-market/config.go
package forecastmarket

import "time"

type Config struct {
	Timeout time.Duration

	// Seed fixes the demand-noise RNG; 0 seeds from the clock.
	Seed int64
	// BaseYear anchors forecast labels; 0 uses the current year.
	BaseYear int
	// Years is the demand forecast horizon.
	Years int
	// DefaultCurrency applies when the request names none.
	DefaultCurrency string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:         10 * time.Second,
		Years:           10,
		DefaultCurrency: "USD",
	}
}
