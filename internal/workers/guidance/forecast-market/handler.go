// internal/workers/guidance/forecast-market/handler.go
package forecastmarket

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/metrics"
	"careerguide-workers/internal/models"
	"careerguide-workers/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "forecast-market"

// salaryFactor compounds a category's early-career salary trajectory.
type salaryFactor struct {
	Growth float64
}

// demandTrend drives the simulated demand index for a category.
type demandTrend struct {
	Growth     float64
	Volatility float64
	AIImpact   string
}

var salaryFactors = map[string]salaryFactor{
	"Technology":  {Growth: 0.12},
	"Healthcare":  {Growth: 0.08},
	"Finance":     {Growth: 0.15},
	"Engineering": {Growth: 0.08},
	"Creative":    {Growth: 0.10},
	"Marketing":   {Growth: 0.10},
	"Law":         {Growth: 0.12},
	"Design":      {Growth: 0.09},
	"Media":       {Growth: 0.07},
	"Science":     {Growth: 0.08},
}

var demandTrends = map[string]demandTrend{
	"Technology":  {Growth: 0.15, Volatility: 0.10, AIImpact: "transformative"},
	"Healthcare":  {Growth: 0.08, Volatility: 0.05, AIImpact: "augmenting"},
	"Finance":     {Growth: 0.05, Volatility: 0.12, AIImpact: "significant"},
	"Engineering": {Growth: 0.06, Volatility: 0.07, AIImpact: "moderate"},
	"Creative":    {Growth: 0.04, Volatility: 0.15, AIImpact: "significant"},
	"Marketing":   {Growth: 0.07, Volatility: 0.10, AIImpact: "significant"},
	"Law":         {Growth: 0.03, Volatility: 0.05, AIImpact: "moderate"},
	"Design":      {Growth: 0.06, Volatility: 0.12, AIImpact: "significant"},
	"Media":       {Growth: 0.02, Volatility: 0.20, AIImpact: "disruptive"},
	"Science":     {Growth: 0.07, Volatility: 0.08, AIImpact: "augmenting"},
}

// Unknown categories inherit the Technology row of both tables.
const fallbackCategory = "Technology"

type Handler struct {
	config *Config
	store  refdata.Store
	logger logger.Logger
	rng    *rand.Rand
}

func NewHandler(config *Config, store refdata.Store, log logger.Logger) *Handler {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Handler{
		config: config,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		rng:    rand.New(rand.NewSource(seed)),
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
		code := "MARKET_FORECAST_FAILED"
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
	career, err := refdata.FindCareer(ctx, h.store, input.CareerName)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = h.config.DefaultCurrency
	}

	projections := h.projectSalaries(career, currency)
	forecast, outlook := h.forecastDemand(career)

	h.logger.Info("market forecast generated", map[string]interface{}{
		"career":  career.Name,
		"outlook": outlook.TenYearOutlook,
	})

	return &Output{
		SalaryProjections: projections,
		DemandForecast:    forecast,
		Outlook:           outlook,
	}, nil
}

// projectSalaries anchors the trajectory to the catalog's entry, mid and
// senior figures, compounding entry pay over three years for the early stage.
// Leadership pay is modeled as senior plus thirty percent.
func (h *Handler) projectSalaries(career models.Career, currency string) map[string]interface{} {
	factor, ok := salaryFactors[career.Category]
	if !ok {
		factor = salaryFactors[fallbackCategory]
	}

	entry := float64(career.EntrySalary(currency))
	mid := float64(career.MidSalary(currency))
	senior := float64(career.SeniorSalary(currency))

	return map[string]interface{}{
		"current_entry_level":   roundMoney(entry),
		"experienced_3_years":   roundMoney(entry * math.Pow(1+factor.Growth, 3)),
		"mid_level_5_years":     roundMoney(mid),
		"senior_level_10_years": roundMoney(senior),
		"leadership_15_years":   roundMoney(senior * 1.3),
		"growth_rate":           fmt.Sprintf("%.1f%%", factor.Growth*100),
		"currency":              currency,
	}
}

// forecastDemand simulates the demand index year by year. Growth compounds
// from the career's own rate, discounted by automation exposure, with
// normally distributed noise scaled to the category's volatility.
func (h *Handler) forecastDemand(career models.Career) ([]DemandPoint, models.JobMarketOutlook) {
	trend, ok := demandTrends[career.Category]
	if !ok {
		trend = demandTrends[fallbackCategory]
	}

	growthRate := career.JobGrowthRate
	if growthRate == 0 {
		growthRate = trend.Growth
	}

	baseYear := h.config.BaseYear
	if baseYear == 0 {
		baseYear = time.Now().Year()
	}
	years := h.config.Years
	if years <= 0 {
		years = 10
	}

	index := 100.0
	points := make([]DemandPoint, 0, years)
	for i := 1; i <= years; i++ {
		growth := growthRate*(1-career.AutomationRisk*0.3) + h.rng.NormFloat64()*trend.Volatility*0.5
		index *= 1 + growth
		if index < 0 {
			index = 0
		}
		points = append(points, DemandPoint{
			Year:       baseYear + i,
			Index:      math.Round(index*10) / 10,
			GrowthRate: fmt.Sprintf("%.1f%%", growth*100),
		})
	}

	final := points[len(points)-1].Index
	outlook := models.JobMarketOutlook{
		TenYearOutlook: outlookLabel(final),
		GrowthRate:     fmt.Sprintf("%.1f%%", growthRate*100),
		AutomationRisk: fmt.Sprintf("%.0f%%", career.AutomationRisk*100),
		AIImpact:       trend.AIImpact,
	}
	return points, outlook
}

func outlookLabel(finalIndex float64) string {
	switch {
	case finalIndex > 200:
		return "Excellent"
	case finalIndex > 150:
		return "Very Good"
	case finalIndex > 120:
		return "Good"
	case finalIndex > 100:
		return "Stable"
	default:
		return "Declining"
	}
}

func roundMoney(v float64) int {
	return int(math.Round(v))
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
