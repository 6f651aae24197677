// internal/workers/safety/detect-scam-content/config.go
package detectscamcontent

import "time"

type Config struct {
	Timeout time.Duration
	// MaxContentLength bounds how many bytes of content are analyzed.
	MaxContentLength int
	// AuditIndex is the Elasticsearch index for verdict audit records;
	// empty disables auditing.
	AuditIndex string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:          10 * time.Second,
		MaxContentLength: 20000,
		AuditIndex:       "scam-verdicts",
	}
}
