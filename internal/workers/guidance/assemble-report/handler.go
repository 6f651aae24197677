// internal/workers/guidance/assemble-report/handler.go
package assemblereport

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/metrics"
	"careerguide-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "assemble-report"

	strengthThreshold    = 0.7
	calmThreshold        = 0.3
	topSkillCount        = 3
	improvementThreshold = 0.5
	improvementCount     = 2
)

type Handler struct {
	config *Config
	db     *sql.DB // optional; nil disables report history
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
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
		h.failJob(client, job, "REPORT_ASSEMBLY_FAILED", err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	averageMarks := input.AverageMarks
	if averageMarks == 0 {
		averageMarks = input.StudentProfile.AverageMarks()
	}

	careers := input.CareerRecommendations
	if len(careers) > h.config.MaxCareers {
		careers = careers[:h.config.MaxCareers]
	}
	colleges := input.CollegeRecommendations
	if len(colleges) > h.config.MaxColleges {
		colleges = colleges[:h.config.MaxColleges]
	}

	topSkills, improvements := analyzeSkills(input.SkillScores)

	report := models.Report{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		StudentInfo: models.StudentInfo{
			Name:         input.StudentProfile.Name,
			Age:          input.StudentProfile.Age,
			Grade:        input.StudentProfile.Grade,
			AverageMarks: averageMarks,
		},
		PersonalityAnalysis: models.PersonalityAnalysis{
			MBTIType:      input.Personality.MBTIType,
			BigFiveTraits: input.Personality.BigFive,
			KeyStrengths:  keyStrengths(input.Personality.BigFive),
		},
		SkillAnalysis: models.SkillAnalysis{
			TopSkills:           topSkills,
			AreasForImprovement: improvements,
			DetailedScores:      input.SkillScores,
		},
		CareerRecommendations:  careers,
		SalaryProjections:      input.SalaryProjections,
		JobMarketOutlook:       input.JobMarketOutlook,
		CollegeRecommendations: colleges,
		FiveYearRoadmap:        input.Roadmap,
		NextSteps:              nextSteps(careers, colleges, improvements),
	}

	h.persist(ctx, input.StudentProfile.UserID, &report)

	h.logger.Info("report assembled", map[string]interface{}{
		"reportId": report.ReportID,
		"userId":   input.StudentProfile.UserID,
	})

	return &Output{Report: report}, nil
}

// analyzeSkills splits the score map into the strongest skills and the
// weakest sub-threshold areas. Ties break alphabetically so output is stable.
func analyzeSkills(scores map[string]float64) (topSkills, improvements []string) {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	descending := append([]string(nil), names...)
	sort.SliceStable(descending, func(i, j int) bool {
		return scores[descending[i]] > scores[descending[j]]
	})

	for i := 0; i < len(descending) && i < topSkillCount; i++ {
		topSkills = append(topSkills, descending[i])
	}

	ascending := append([]string(nil), names...)
	sort.SliceStable(ascending, func(i, j int) bool {
		return scores[ascending[i]] < scores[ascending[j]]
	})
	for _, name := range ascending {
		if scores[name] >= improvementThreshold || len(improvements) == improvementCount {
			break
		}
		improvements = append(improvements, name)
	}
	return topSkills, improvements
}

func keyStrengths(traits models.BigFiveTraits) []string {
	var strengths []string
	if traits.Openness > strengthThreshold {
		strengths = append(strengths, "Creative and open to new experiences")
	}
	if traits.Conscientiousness > strengthThreshold {
		strengths = append(strengths, "Organized and disciplined")
	}
	if traits.Extraversion > strengthThreshold {
		strengths = append(strengths, "Outgoing and energetic")
	}
	if traits.Agreeableness > strengthThreshold {
		strengths = append(strengths, "Cooperative and empathetic")
	}
	if traits.Neuroticism < calmThreshold {
		strengths = append(strengths, "Calm under pressure")
	}
	return strengths
}

func nextSteps(careers []models.CareerRecommendation, colleges []models.CollegeSummary, improvements []string) []string {
	var steps []string
	if len(improvements) > 0 {
		steps = append(steps, fmt.Sprintf("Strengthen weaker areas: %s", strings.Join(improvements, ", ")))
	}
	if len(careers) > 0 {
		steps = append(steps, fmt.Sprintf("Explore beginner courses for %s", careers[0].CareerName))
	}
	if len(colleges) > 0 {
		steps = append(steps, fmt.Sprintf("Shortlist colleges such as %s", colleges[0].Name))
	}
	steps = append(steps,
		"Build a portfolio of projects and activities",
		"Review this report with a mentor or counselor",
	)
	return steps
}

// persist stores the report and prunes history beyond the configured size.
// Storage trouble degrades to an unsaved report rather than a failed job.
func (h *Handler) persist(ctx context.Context, userID string, report *models.Report) {
	if h.db == nil || userID == "" {
		return
	}

	body, err := json.Marshal(report)
	if err != nil {
		return
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO reports (id, user_id, report, created_at)
		VALUES ($1, $2, $3, $4)`,
		report.ReportID, userID, body, report.GeneratedAt)
	if err != nil {
		persistErr := errors.NewReportPersistError(err)
		h.logger.Warn("report history write failed", map[string]interface{}{
			"reportId": report.ReportID,
			"error":    persistErr,
		})
		return
	}

	_, err = h.db.ExecContext(ctx, `
		DELETE FROM reports
		WHERE user_id = $1 AND id NOT IN (
			SELECT id FROM reports
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		)`, userID, h.config.HistorySize)
	if err != nil {
		h.logger.Warn("report history prune failed", map[string]interface{}{
			"userId": userID,
			"error":  err,
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
