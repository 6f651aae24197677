// internal/workers/assessment/analyze-skills/handler.go
package analyzeskills

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "analyze-skills"

	// Mark applied for canonical subjects absent from both mark sheets.
	defaultMark = 50.0
)

// Canonical subject keys. Raw mark-sheet subject names are folded into these
// before scoring.
const (
	subjMath     = "math"
	subjScience  = "science"
	subjComputer = "computer"
	subjEnglish  = "english"
	subjSocial   = "social science"
	subjCommerce = "commerce"
	subjArts     = "arts"
)

// subjectAliases folds common mark-sheet subject names into canonical keys.
// Unknown subjects pass through lowercased and only contribute if a weight
// table references them.
var subjectAliases = map[string]string{
	"mathematics":      subjMath,
	"maths":            subjMath,
	"math":             subjMath,
	"physics":          subjScience,
	"chemistry":        subjScience,
	"biology":          subjScience,
	"science":          subjScience,
	"computer science": subjComputer,
	"computers":        subjComputer,
	"computer":         subjComputer,
	"informatics":      subjComputer,
	"it":               subjComputer,
	"english":          subjEnglish,
	"language":         subjEnglish,
	"social science":   subjSocial,
	"social studies":   subjSocial,
	"history":          subjSocial,
	"geography":        subjSocial,
	"civics":           subjSocial,
	"social":           subjSocial,
	"commerce":         subjCommerce,
	"accountancy":      subjCommerce,
	"accounts":         subjCommerce,
	"economics":        subjCommerce,
	"business studies": subjCommerce,
	"arts":             subjArts,
	"art":              subjArts,
	"fine arts":        subjArts,
	"drawing":          subjArts,
}

// skillWeights maps each derived skill to its weighted subject blend. Each
// row's weights sum to 1 so a student with uniform marks scores uniformly.
var skillWeights = map[string]map[string]float64{
	"analytical":      {subjMath: 0.4, subjScience: 0.3, subjComputer: 0.3},
	"creative":        {subjArts: 0.5, subjEnglish: 0.3, subjSocial: 0.2},
	"technical":       {subjComputer: 0.5, subjMath: 0.3, subjScience: 0.2},
	"communication":   {subjEnglish: 0.5, subjSocial: 0.4, subjArts: 0.1},
	"leadership":      {subjSocial: 0.5, subjCommerce: 0.3, subjEnglish: 0.2},
	"detail_oriented": {subjMath: 0.4, subjCommerce: 0.4, subjScience: 0.2},
	"problem_solving": {subjMath: 0.35, subjScience: 0.35, subjComputer: 0.3},
	"research":        {subjScience: 0.4, subjEnglish: 0.3, subjComputer: 0.3},
}

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
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
		h.failJob(client, job, "SKILL_ANALYSIS_FAILED", err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	marks := normalizeMarks(input.StudentProfile.Marks10th, input.StudentProfile.Marks12th)

	scores := make(map[string]float64, len(skillWeights))
	for skill, weights := range skillWeights {
		var total float64
		for subject, weight := range weights {
			mark, ok := marks[subject]
			if !ok {
				mark = defaultMark
			}
			total += weight * mark
		}
		scores[skill] = round3(clamp01(total / 100))
	}

	h.logger.Info("skill scores computed", map[string]interface{}{
		"userId": input.StudentProfile.UserID,
		"scores": scores,
	})

	subjects := make([]string, 0, len(marks))
	for subject := range marks {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	return &Output{
		SkillScores:  scores,
		Subjects:     subjects,
		AverageMarks: input.StudentProfile.AverageMarks(),
	}, nil
}

// normalizeMarks folds both mark sheets into canonical subjects. A subject
// appearing multiple times (two sheets, or aliases folding together) scores
// the mean of all its occurrences.
func normalizeMarks(sheets ...map[string]float64) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, sheet := range sheets {
		for subject, mark := range sheet {
			key := strings.ToLower(strings.TrimSpace(subject))
			if canonical, ok := subjectAliases[key]; ok {
				key = canonical
			}
			sums[key] += mark
			counts[key]++
		}
	}

	marks := make(map[string]float64, len(sums))
	for subject, sum := range sums {
		marks[subject] = sum / float64(counts[subject])
	}
	return marks
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
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
