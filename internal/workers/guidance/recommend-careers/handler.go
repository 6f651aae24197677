// internal/workers/guidance/recommend-careers/handler.go
package recommendcareers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/metrics"
	"careerguide-workers/internal/models"
	"careerguide-workers/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "recommend-careers"

	// Sub-scores fall back to the scale midpoint when the input carries no
	// signal for them. A skill the student was never scored on contributes
	// a weaker 0.3.
	neutralScore      = 0.5
	missingSkillScore = 0.3

	// Sharing all four MBTI letters scores just below a declared fit entry,
	// so catalog-listed types always rank ahead of coincidental letter overlap.
	exactPersonalityFit = 0.95
)

type Handler struct {
	config *Config
	store  refdata.Store
	logger logger.Logger
}

// NewHandler rejects configs whose blend weights do not sum to 1: a skewed
// sum silently compresses or inflates every match percentage.
func NewHandler(config *Config, store refdata.Store, log logger.Logger) (*Handler, error) {
	if math.Abs(config.Weights.Sum()-1.0) > 1e-9 {
		return nil, &errors.StandardError{
			Code:      errors.ErrCodeInvalidMatchWeight,
			Message:   fmt.Sprintf("match weights must sum to 1.0, got %v", config.Weights.Sum()),
			Retryable: false,
			Timestamp: time.Now().UTC(),
		}
	}
	return &Handler{
		config: config,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}, nil
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
		code := "CAREER_RECOMMENDATION_FAILED"
		var stdErr *errors.StandardError
		if stderrors.As(err, &stdErr) {
			code = string(stdErr.Code)
		}
		h.failJob(client, job, code, err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.TopN < 0 {
		return nil, errors.NewInvalidTopNError(input.TopN)
	}
	topN := input.TopN
	if topN == 0 {
		topN = h.config.DefaultTopN
	}

	careers, err := h.store.Careers(ctx)
	if err != nil {
		return nil, err
	}

	recommendations := make([]models.CareerRecommendation, 0, len(careers))
	for _, career := range careers {
		skill := h.skillMatch(input.SkillScores, career.TraitsRequired)
		personality := h.personalityMatch(input.Personality.MBTIType, career.PersonalityFit)
		academic := h.academicMatch(input.Subjects, career.Subjects)
		interest := h.interestMatch(input.Interests, career)
		aptitude := neutralScore

		w := h.config.Weights
		total := skill*w.Skill +
			personality*w.Personality +
			academic*w.Academic +
			interest*w.Interest +
			aptitude*w.Aptitude

		recommendations = append(recommendations, models.CareerRecommendation{
			CareerName:      career.Name,
			MatchPercentage: round1(total * 100),
			Category:        career.Category,
			Description:     career.Description,
			DifficultyLevel: career.Difficulty,
			AutomationRisk:  riskLabel(career.AutomationRisk),
			RequiredSkills:  career.RequiredSkills,
			Education:       career.Education,
			MatchBreakdown: map[string]float64{
				"skill_match":       round1(skill * 100),
				"personality_match": round1(personality * 100),
				"academic_match":    round1(academic * 100),
				"interest_match":    round1(interest * 100),
				"aptitude_match":    round1(aptitude * 100),
			},
		})
	}

	// Stable sort keeps catalog order among equal scores deterministic.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchPercentage > recommendations[j].MatchPercentage
	})
	if len(recommendations) > topN {
		recommendations = recommendations[:topN]
	}
	for i := range recommendations {
		recommendations[i].Rank = i + 1
	}

	if len(recommendations) > 0 {
		metrics.CareerMatchPercentage.Observe(recommendations[0].MatchPercentage)
		h.logger.Info("careers recommended", map[string]interface{}{
			"userId":   input.UserID,
			"topMatch": recommendations[0].CareerName,
			"score":    recommendations[0].MatchPercentage,
		})
	}

	return &Output{Recommendations: recommendations}, nil
}

// skillMatch averages per-trait fit, where fit is 1 minus the distance
// between the required level and the student's score. Overshooting a
// requirement costs as much as undershooting it.
func (h *Handler) skillMatch(skills map[string]float64, required map[string]float64) float64 {
	if len(required) == 0 {
		return neutralScore
	}

	var total float64
	for trait, level := range required {
		score, ok := skills[trait]
		if !ok {
			score = missingSkillScore
		}
		total += 1.0 - math.Abs(level-score)
	}
	return total / float64(len(required))
}

func (h *Handler) personalityMatch(mbtiType string, fit []string) float64 {
	if mbtiType == "" || len(fit) == 0 {
		return neutralScore
	}

	best := 0.0
	for _, candidate := range fit {
		if strings.EqualFold(candidate, mbtiType) {
			return exactPersonalityFit
		}
		shared := sharedLetters(mbtiType, candidate)
		if score := float64(shared) / 4.0; score > best {
			best = score
		}
	}
	return best
}

func sharedLetters(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	shared := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			shared++
		}
	}
	return shared
}

// academicMatch is the fraction of the career's declared subjects present in
// the student's subject list. A career declaring the "any" wildcard counts
// every declared subject as satisfied.
func (h *Handler) academicMatch(userSubjects, careerSubjects []string) float64 {
	if len(careerSubjects) == 0 || len(userSubjects) == 0 {
		return neutralScore
	}

	user := make(map[string]bool, len(userSubjects))
	for _, s := range userSubjects {
		user[strings.ToLower(s)] = true
	}

	wildcard := false
	for _, s := range careerSubjects {
		if strings.EqualFold(s, "any") {
			wildcard = true
			break
		}
	}

	matches := 0
	for _, s := range careerSubjects {
		if wildcard || user[strings.ToLower(s)] {
			matches++
		}
	}
	return float64(matches) / float64(len(careerSubjects))
}

// interestMatch looks for a declared interest overlapping the career's
// category, substring in either direction.
func (h *Handler) interestMatch(interests []string, career models.Career) float64 {
	if len(interests) == 0 {
		return neutralScore
	}

	category := strings.ToLower(career.Category)
	for _, interest := range interests {
		needle := strings.ToLower(strings.TrimSpace(interest))
		if needle == "" {
			continue
		}
		if overlaps(needle, category) {
			return 0.8
		}
	}
	return neutralScore
}

func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func riskLabel(risk float64) string {
	switch {
	case risk < 0.3:
		return "Low"
	case risk < 0.6:
		return "Medium"
	default:
		return "High"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
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
