// internal/workers/safety/detect-scam-content/handler.go
package detectscamcontent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "detect-scam-content"

	pointsPerMatch      = 15
	untrustedSourceBump = 20
	maxWarnings         = 3
)

// scamPatterns are the red-flag expressions matched against the content.
// The raw pattern strings double as the warnings surfaced to the user.
var scamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)earn\s+(\$|₹|rs\.?\s*)?\d[\d,]*\s*(per\s+(day|week)|daily|weekly)`),
	regexp.MustCompile(`(?i)no\s+experience\s+(needed|required|necessary)`),
	regexp.MustCompile(`(?i)(registration|processing|training|joining)\s+fee`),
	regexp.MustCompile(`(?i)pay\s+(upfront|in\s+advance|first)`),
	regexp.MustCompile(`(?i)guaranteed\s+(job|income|placement|returns)`),
	regexp.MustCompile(`(?i)100%\s*(job\s+)?(guarantee|placement|success)`),
	regexp.MustCompile(`(?i)urgent\s+(hiring|requirement|opening)`),
	regexp.MustCompile(`(?i)(whatsapp|telegram)\s+(us|me|now|only)`),
	regexp.MustCompile(`(?i)click\s+(here|this\s+link)\s+to\s+(apply|register|claim)`),
	regexp.MustCompile(`(?i)secret\s+(method|trick|formula)`),
	regexp.MustCompile(`(?i)become\s+a\s+millionaire`),
	regexp.MustCompile(`(?i)(millionaire|rich)\s+in\s+\d+\s*(days|weeks|months)`),
	regexp.MustCompile(`(?i)(limited\s+spots?\s+(available|left)|only\s+\d+\s+spots?\s+(left|available))`),
	regexp.MustCompile(`(?i)work\s+from\s+home.{0,40}(\$|₹|rs\.?\s*)\d[\d,]*`),
}

// trustedSources are course platforms and institutions that skip the
// untrusted-source penalty. Matching is case-insensitive substring on the
// source field.
var trustedSources = []string{
	"coursera", "edx", "udemy", "linkedin learning", "pluralsight",
	"mit", "stanford", "harvard", "google", "microsoft", "aws",
	"iiit", "iit", "nit", "bits", "university", "college",
}

// AuditIndexer records one verdict document per analysis.
type AuditIndexer interface {
	IndexDocument(ctx context.Context, index string, body []byte) error
}

type Handler struct {
	config  *Config
	auditor AuditIndexer // optional
	logger  logger.Logger
}

func NewHandler(config *Config, auditor AuditIndexer, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		auditor: auditor,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		h.failJob(client, job, "SCAM_ANALYSIS_FAILED", err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	content := input.Content
	if len(content) > h.config.MaxContentLength {
		content = content[:h.config.MaxContentLength]
	}

	var matchedRules []string
	for _, pattern := range scamPatterns {
		if pattern.MatchString(content) {
			matchedRules = append(matchedRules, pattern.String())
		}
	}
	warnings := matchedRules
	if len(warnings) > maxWarnings {
		warnings = warnings[:maxWarnings]
	}

	trusted := isTrustedSource(input.Source)

	score := len(matchedRules) * pointsPerMatch
	if !trusted && len(matchedRules) > 0 {
		score += untrustedSourceBump
	}
	if score > 100 {
		score = 100
	}

	verdict, recommendation := verdictFor(score)
	metrics.ScamVerdicts.WithLabelValues(verdict).Inc()

	output := &Output{
		ScamScore:      score,
		Verdict:        verdict,
		Recommendation: recommendation,
		Warnings:       warnings,
		MatchedRules:   len(matchedRules),
		TrustedSource:  trusted,
	}

	h.audit(ctx, input.Source, output, matchedRules)

	h.logger.Info("content analyzed", map[string]interface{}{
		"source":  input.Source,
		"score":   score,
		"verdict": verdict,
	})

	return output, nil
}

func isTrustedSource(source string) bool {
	if source == "" {
		return false
	}
	lower := strings.ToLower(source)
	for _, trusted := range trustedSources {
		if strings.Contains(lower, trusted) {
			return true
		}
	}
	return false
}

func verdictFor(score int) (verdict, recommendation string) {
	switch {
	case score >= 70:
		return "High Risk - Likely Scam", "Avoid this content. The claims seem unrealistic."
	case score >= 40:
		return "Medium Risk - Be Cautious", "Verify claims independently before taking action."
	case score >= 20:
		return "Low Risk - Minor Concerns", "Content seems mostly legitimate but verify details."
	default:
		return "Safe - No Issues Detected", "Content appears legitimate."
	}
}

// audit indexes the verdict; audit trouble never fails the analysis.
func (h *Handler) audit(ctx context.Context, source string, output *Output, matchedRules []string) {
	if h.auditor == nil || h.config.AuditIndex == "" {
		return
	}

	record := auditRecord{
		Source:       source,
		ScamScore:    output.ScamScore,
		Verdict:      output.Verdict,
		MatchedRules: matchedRules,
		AnalyzedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := h.auditor.IndexDocument(ctx, h.config.AuditIndex, body); err != nil {
		h.logger.Warn("verdict audit indexing failed", map[string]interface{}{
			"error": err,
		})
	}
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
