// internal/workers/communication/send-notification/handler.go
package sendnotification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "send-notification"

// EmailSender sends report emails. *aws.SESClient satisfies it.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SMSSender publishes report texts. *aws.SNSClient satisfies it.
type SMSSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type Handler struct {
	config *Config
	email  EmailSender
	sms    SMSSender
	logger logger.Logger
}

func NewHandler(config *Config, email EmailSender, sms SMSSender, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		email:  email,
		sms:    sms,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, string(errors.ErrCodeNotificationSendFailed), err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	var messageID string
	var err error
	switch input.Channel {
	case ChannelEmail:
		messageID, err = h.sendEmail(ctx, input)
	case ChannelSMS:
		messageID, err = h.sendSMS(ctx, input)
	}
	if err != nil {
		return nil, &errors.StandardError{
			Code:      errors.ErrCodeNotificationSendFailed,
			Message:   fmt.Sprintf("failed to deliver %s notification", input.Channel),
			Details:   err.Error(),
			Retryable: true,
			Timestamp: time.Now().UTC(),
		}
	}

	h.logger.Info("notification sent", map[string]interface{}{
		"channel":   input.Channel,
		"messageId": messageID,
		"reportId":  input.ReportID,
	})

	return &Output{
		Success:   true,
		Channel:   input.Channel,
		MessageID: messageID,
		SentAt:    time.Now().UTC(),
	}, nil
}

func validate(input *Input) error {
	switch input.Channel {
	case ChannelEmail:
		if !isValidEmail(input.Recipient) {
			return validationError(fmt.Sprintf("invalid recipient email address: %s", input.Recipient))
		}
	case ChannelSMS:
		if strings.TrimSpace(input.Recipient) == "" {
			return validationError("sms recipient is required")
		}
	default:
		return validationError(fmt.Sprintf("unsupported channel: %q", input.Channel))
	}
	if strings.TrimSpace(input.Message) == "" {
		return validationError("message body is required")
	}
	return nil
}

func validationError(details string) error {
	return &errors.StandardError{
		Code:      "VALIDATION_FAILED",
		Message:   "notification validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && len(parts[1]) > 0 && strings.Contains(parts[1], ".")
}

func (h *Handler) sendEmail(ctx context.Context, input *Input) (string, error) {
	if h.email == nil {
		return "", fmt.Errorf("email channel not configured")
	}

	subject := input.Subject
	if subject == "" {
		subject = "Your Career Guidance Report"
	}

	result, err := h.email.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(h.config.FromAddress),
		Destination: &sestypes.Destination{
			ToAddresses: []string{input.Recipient},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{
				Data:    aws.String(subject),
				Charset: aws.String(h.config.Charset),
			},
			Body: &sestypes.Body{
				Text: &sestypes.Content{
					Data:    aws.String(input.Message),
					Charset: aws.String(h.config.Charset),
				},
			},
		},
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(result.MessageId), nil
}

func (h *Handler) sendSMS(ctx context.Context, input *Input) (string, error) {
	if h.sms == nil {
		return "", fmt.Errorf("sms channel not configured")
	}

	result, err := h.sms.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(input.Recipient),
		Message:     aws.String(input.Message),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(result.MessageId), nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
