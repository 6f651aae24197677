// internal/workers/guidance/forecast-market/handler_test.go
package forecastmarket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/models"
	"careerguide-workers/internal/refdata"
)

func newTestHandler(seed int64) *Handler {
	cfg := LoadConfig()
	cfg.Seed = seed
	cfg.BaseYear = 2026
	return NewHandler(cfg, refdata.NewDefaultStore(), logger.NewNop())
}

func TestSalaryProjections(t *testing.T) {
	h := newTestHandler(42)

	output, err := h.Execute(context.Background(), &Input{
		CareerName: "Software Engineer",
		Currency:   "USD",
	})
	require.NoError(t, err)

	p := output.SalaryProjections
	// Entry pay is the catalog figure, compounded at Technology's 12% for
	// the three-year stage.
	assert.Equal(t, 95000, p["current_entry_level"])
	assert.Equal(t, 133468, p["experienced_3_years"])
	assert.Equal(t, 140000, p["mid_level_5_years"])
	assert.Equal(t, 200000, p["senior_level_10_years"])
	assert.Equal(t, 260000, p["leadership_15_years"])
	assert.Equal(t, "12.0%", p["growth_rate"])
	assert.Equal(t, "USD", p["currency"])
}

func TestSalaryProjectionsUseCatalogFigures(t *testing.T) {
	h := newTestHandler(42)

	output, err := h.Execute(context.Background(), &Input{
		CareerName: "Graphic Designer",
		Currency:   "USD",
	})
	require.NoError(t, err)

	p := output.SalaryProjections
	// The 45000 catalog entry salary passes through unscaled; Creative
	// compounds at 10%.
	assert.Equal(t, 45000, p["current_entry_level"])
	assert.Equal(t, 59895, p["experienced_3_years"])
	assert.Equal(t, "10.0%", p["growth_rate"])
}

func TestUnknownCategoryFallsBackToTechnology(t *testing.T) {
	store := &refdata.StaticStore{
		CareerList: []models.Career{
			{
				Name:     "Agronomist",
				Category: "Agriculture",
				Salary: models.SalaryTable{
					"entry":  {"USD": 40000},
					"mid":    {"USD": 60000},
					"senior": {"USD": 90000},
				},
			},
		},
	}
	cfg := LoadConfig()
	cfg.Seed = 42
	cfg.BaseYear = 2026
	h := NewHandler(cfg, store, logger.NewNop())

	output, err := h.Execute(context.Background(), &Input{CareerName: "Agronomist", Currency: "USD"})
	require.NoError(t, err)

	p := output.SalaryProjections
	assert.Equal(t, 40000, p["current_entry_level"])
	assert.Equal(t, "12.0%", p["growth_rate"])
	assert.Equal(t, "transformative", output.Outlook.AIImpact)
}

func TestDemandForecastHorizonAndLabels(t *testing.T) {
	h := newTestHandler(42)

	output, err := h.Execute(context.Background(), &Input{CareerName: "Software Engineer"})
	require.NoError(t, err)

	require.Len(t, output.DemandForecast, 10)
	assert.Equal(t, 2027, output.DemandForecast[0].Year)
	assert.Equal(t, 2036, output.DemandForecast[9].Year)
	for _, point := range output.DemandForecast {
		assert.GreaterOrEqual(t, point.Index, 0.0)
	}

	// Strong compounding growth never reads as a shrinking market.
	assert.NotEqual(t, "Declining", output.Outlook.TenYearOutlook)
	assert.Equal(t, "15.0%", output.Outlook.GrowthRate)
	assert.Equal(t, "15%", output.Outlook.AutomationRisk)
	assert.Equal(t, "transformative", output.Outlook.AIImpact)
}

func TestDemandForecastDeterministicWithSeed(t *testing.T) {
	first, err := newTestHandler(7).Execute(context.Background(), &Input{CareerName: "Data Scientist"})
	require.NoError(t, err)
	second, err := newTestHandler(7).Execute(context.Background(), &Input{CareerName: "Data Scientist"})
	require.NoError(t, err)

	assert.Equal(t, first.DemandForecast, second.DemandForecast)
	assert.Equal(t, first.Outlook, second.Outlook)
}

func TestExecuteUnknownCareer(t *testing.T) {
	h := newTestHandler(42)

	_, err := h.Execute(context.Background(), &Input{CareerName: "Dragon Tamer"})
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeCareerNotFound, stdErr.Code)
}

func TestExecuteDefaultsCurrency(t *testing.T) {
	h := newTestHandler(42)

	output, err := h.Execute(context.Background(), &Input{CareerName: "Software Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "USD", output.SalaryProjections["currency"])
}

func TestOutlookLabelThresholds(t *testing.T) {
	tests := []struct {
		index    float64
		expected string
	}{
		{250, "Excellent"},
		{200, "Very Good"},
		{151, "Very Good"},
		{150, "Good"},
		{121, "Good"},
		{120, "Stable"},
		{101, "Stable"},
		{100, "Declining"},
		{40, "Declining"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, outlookLabel(tt.index), "index %v", tt.index)
	}
}
