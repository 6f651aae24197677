// internal/workers/communication/send-notification/models.go
package sendnotification

import "time"

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

type Input struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	ReportID  string `json:"reportId,omitempty"`
}

type Output struct {
	Success   bool      `json:"success"`
	Channel   string    `json:"channel"`
	MessageID string    `json:"messageId,omitempty"`
	SentAt    time.Time `json:"sentAt"`
}
