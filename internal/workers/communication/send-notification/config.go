// internal/workers/communication/send-notification/config.go
package sendnotification

import "time"

type Config struct {
	Timeout time.Duration
	// FromAddress is the verified SES sender identity.
	FromAddress string
	// Charset applies to SES subject and body.
	Charset string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     15 * time.Second,
		FromAddress: "reports@careerguide.example",
		Charset:     "UTF-8",
	}
}
