// internal/workers/assessment/classify-personality/handler.go
package classifypersonality

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/metrics"
	"careerguide-workers/internal/models"
	"careerguide-workers/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "classify-personality"

	// Big Five traits start at the scale midpoint and move by a tenth of
	// each answer's declared delta, clamped to [0,1] at both ends.
	traitBaseline = 0.5
	traitStep     = 0.1
)

// mbtiPairs lists each dimension as (dominant, recessive). Ties resolve to
// the dominant letter, so a student with no signal classifies as ESTJ.
var mbtiPairs = [4][2]string{
	{"E", "I"},
	{"S", "N"},
	{"T", "F"},
	{"J", "P"},
}

var bigFiveTraits = []string{
	"openness",
	"conscientiousness",
	"extraversion",
	"agreeableness",
	"neuroticism",
}

type Handler struct {
	config *Config
	store  refdata.Store
	logger logger.Logger
}

func NewHandler(config *Config, store refdata.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  store,
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
		h.failJob(client, job, "PERSONALITY_CLASSIFICATION_FAILED", err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	mbtiType := classifyMBTI(input.Answers)
	bigFive := scoreBigFive(input.Answers)

	output := &Output{
		Personality: models.PersonalityProfile{
			MBTIType: mbtiType,
			BigFive:  bigFive,
		},
	}

	// Reference enrichment is best effort; classification stands on its own
	// when the catalog has no entry for the type.
	reference, err := h.store.MBTIReference(ctx)
	if err != nil {
		h.logger.Warn("personality reference unavailable", map[string]interface{}{
			"error": err,
		})
	} else if info, ok := reference[mbtiType]; ok {
		output.Reference = &info
	}

	h.logger.Info("personality classified", map[string]interface{}{
		"userId":   input.UserID,
		"mbtiType": mbtiType,
	})

	return output, nil
}

func classifyMBTI(answers []models.QuizAnswer) string {
	totals := make(map[string]float64, 8)
	for _, answer := range answers {
		for _, pair := range mbtiPairs {
			totals[pair[0]] += answer.Scores[pair[0]]
			totals[pair[1]] += answer.Scores[pair[1]]
		}
	}

	mbtiType := ""
	for _, pair := range mbtiPairs {
		if totals[pair[1]] > totals[pair[0]] {
			mbtiType += pair[1]
		} else {
			mbtiType += pair[0]
		}
	}
	return mbtiType
}

func scoreBigFive(answers []models.QuizAnswer) models.BigFiveTraits {
	scores := make(map[string]float64, len(bigFiveTraits))
	for _, trait := range bigFiveTraits {
		scores[trait] = traitBaseline
	}

	for _, answer := range answers {
		for _, trait := range bigFiveTraits {
			if delta, ok := answer.Scores[trait]; ok {
				scores[trait] = clamp01(scores[trait] + delta*traitStep)
			}
		}
	}

	return models.BigFiveTraits{
		Openness:          scores["openness"],
		Conscientiousness: scores["conscientiousness"],
		Extraversion:      scores["extraversion"],
		Agreeableness:     scores["agreeableness"],
		Neuroticism:       scores["neuroticism"],
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
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
