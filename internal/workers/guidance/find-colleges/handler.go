// internal/workers/guidance/find-colleges/handler.go
package findcolleges

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

const TaskType = "find-colleges"

// careerCourses maps lowercased career names to the courses a student would
// enroll in. Careers outside the map fall back to the general track.
var careerCourses = map[string][]string{
	"data scientist":       {"Computer Science", "Data Science", "AI/ML", "Statistics"},
	"software engineer":    {"Computer Science", "Engineering", "IT"},
	"ai/ml engineer":       {"Computer Science", "AI/ML", "Data Science"},
	"medical doctor":       {"MBBS", "Medicine", "MD"},
	"chartered accountant": {"Commerce", "Accounting", "MBA"},
	"graphic designer":     {"Design", "Graphic Design", "Fine Arts"},
	"civil engineer":       {"Civil Engineering", "Engineering"},
	"mechanical engineer":  {"Mechanical Engineering", "Engineering"},
	"digital marketing":    {"Marketing", "MBA", "Business"},
	"psychologist":         {"Psychology", "Counseling"},
	"lawyer":               {"Law", "LLB", "LLM"},
	"architect":            {"Architecture"},
	"product manager":      {"MBA", "Management", "Computer Science"},
	"ux designer":          {"Design", "UX Design", "HCI"},
	"fashion designer":     {"Fashion Design", "Design"},
}

var defaultCourses = []string{"Computer Science", "Engineering", "MBA"}

// Suitability blend weights.
const (
	budgetWeight    = 0.25
	locationWeight  = 0.20
	rankingWeight   = 0.25
	placementWeight = 0.30
)

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
		code := "COLLEGE_SEARCH_FAILED"
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
	colleges, err := h.store.Colleges(ctx)
	if err != nil {
		return nil, err
	}

	desired := coursesForCareer(input.CareerName)
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	matches := make([]CollegeMatch, 0, len(colleges))
	for _, college := range colleges {
		matched := matchCourses(college.Courses, desired)
		if len(matched) == 0 {
			continue
		}

		fees := collegeFees(college, currency)
		budgetScore, budgetStatus := scoreBudget(fees, input.Budget)
		locationScore := scoreLocation(college, input.PreferredLocations)
		rankingScore := scoreRanking(college.Ranking)

		suitability := budgetScore*budgetWeight +
			locationScore*locationWeight +
			rankingScore*rankingWeight +
			college.PlacementRate*placementWeight

		feesOut := fees
		if math.IsInf(feesOut, 1) {
			feesOut = 0
		}

		matches = append(matches, CollegeMatch{
			Name:             college.Name,
			Location:         college.Location,
			Country:          college.Country,
			SuitabilityScore: math.Round(suitability*1000) / 10,
			Fees:             feesOut,
			Currency:         currency,
			BudgetStatus:     budgetStatus,
			PlacementRate:    fmt.Sprintf("%.0f%%", college.PlacementRate*100),
			MatchedCourses:   matched,
			Scholarships:     college.Scholarships,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SuitabilityScore > matches[j].SuitabilityScore
	})
	if len(matches) > h.config.MaxResults {
		matches = matches[:h.config.MaxResults]
	}
	for i := range matches {
		matches[i].Rank = i + 1
	}

	h.logger.Info("colleges matched", map[string]interface{}{
		"career":  input.CareerName,
		"matched": len(matches),
	})

	return &Output{Colleges: matches}, nil
}

func coursesForCareer(careerName string) []string {
	key := strings.ToLower(strings.TrimSpace(careerName))
	if courses, ok := careerCourses[key]; ok {
		return courses
	}
	return defaultCourses
}

// matchCourses keeps college courses overlapping any desired course,
// substring in either direction.
func matchCourses(offered, desired []string) []string {
	var matched []string
	for _, course := range offered {
		lower := strings.ToLower(course)
		for _, want := range desired {
			wantLower := strings.ToLower(want)
			if strings.Contains(lower, wantLower) || strings.Contains(wantLower, lower) {
				matched = append(matched, course)
				break
			}
		}
	}
	return matched
}

// collegeFees resolves the annual fee in the requested currency; colleges
// that do not publish one are treated as unaffordable rather than free.
func collegeFees(college models.College, currency string) float64 {
	if fees, ok := college.FeesPerYear[currency]; ok {
		return fees
	}
	return math.Inf(1)
}

func scoreBudget(fees, budget float64) (float64, string) {
	if budget <= 0 {
		return 0.7, "budget_not_specified"
	}
	switch {
	case fees > budget:
		return 0.3, "over_budget"
	case fees < budget*0.5:
		return 1.0, "well_within_budget"
	default:
		return 0.8, "within_budget"
	}
}

func scoreLocation(college models.College, preferred []string) float64 {
	if len(preferred) == 0 {
		return 0.7
	}
	for _, pref := range preferred {
		p := strings.ToLower(strings.TrimSpace(pref))
		if p == "" {
			continue
		}
		if strings.Contains(strings.ToLower(college.Location), p) ||
			strings.Contains(strings.ToLower(college.Country), p) {
			return 1.0
		}
	}
	return 0.5
}

// scoreRanking rewards the global top 50. A college without a published
// ranking is treated as rank 100, which bottoms out at 0.
func scoreRanking(ranking int) float64 {
	if ranking <= 0 {
		ranking = 100
	}
	return math.Max(0, 1-float64(ranking-1)/50)
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
