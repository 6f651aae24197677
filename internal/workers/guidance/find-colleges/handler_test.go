// internal/workers/guidance/find-colleges/handler_test.go
package findcolleges

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/models"
	"careerguide-workers/internal/refdata"
)

func newTestHandler(store refdata.Store) *Handler {
	if store == nil {
		store = refdata.NewDefaultStore()
	}
	return NewHandler(LoadConfig(), store, logger.NewNop())
}

func TestExecuteRanksAffordableLocalCollegeFirst(t *testing.T) {
	h := newTestHandler(nil)

	output, err := h.Execute(context.Background(), &Input{
		CareerName:         "Software Engineer",
		Budget:             3000,
		Currency:           "USD",
		PreferredLocations: []string{"India"},
	})
	require.NoError(t, err)
	require.Len(t, output.Colleges, 2)

	first := output.Colleges[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "Indian Institute of Technology Bombay", first.Name)
	assert.Equal(t, 92.5, first.SuitabilityScore)
	assert.Equal(t, "within_budget", first.BudgetStatus)
	assert.Equal(t, 2700.0, first.Fees)
	assert.Contains(t, first.MatchedCourses, "Computer Science")

	second := output.Colleges[1]
	assert.Equal(t, 2, second.Rank)
	assert.Equal(t, "Massachusetts Institute of Technology", second.Name)
	assert.Equal(t, 71.6, second.SuitabilityScore)
	assert.Equal(t, "over_budget", second.BudgetStatus)
}

func TestExecuteUnknownCareerFallsBackToGeneralTrack(t *testing.T) {
	h := newTestHandler(nil)

	output, err := h.Execute(context.Background(), &Input{
		CareerName: "Ethical Hacker",
		Currency:   "USD",
	})
	require.NoError(t, err)
	// General track covers CS, Engineering and MBA colleges.
	assert.NotEmpty(t, output.Colleges)
}

func TestExecuteEmptyCatalog(t *testing.T) {
	h := newTestHandler(&refdata.StaticStore{})

	_, err := h.Execute(context.Background(), &Input{CareerName: "Software Engineer"})
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeCatalogEmpty, stdErr.Code)
}

func TestScoreBudget(t *testing.T) {
	tests := []struct {
		name           string
		fees           float64
		budget         float64
		expectedScore  float64
		expectedStatus string
	}{
		{name: "well within", fees: 1000, budget: 3000, expectedScore: 1.0, expectedStatus: "well_within_budget"},
		{name: "within", fees: 2700, budget: 3000, expectedScore: 0.8, expectedStatus: "within_budget"},
		{name: "over", fees: 5000, budget: 3000, expectedScore: 0.3, expectedStatus: "over_budget"},
		{name: "unpublished fees are unaffordable", fees: math.Inf(1), budget: 3000, expectedScore: 0.3, expectedStatus: "over_budget"},
		{name: "no budget given", fees: 5000, budget: 0, expectedScore: 0.7, expectedStatus: "budget_not_specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, status := scoreBudget(tt.fees, tt.budget)
			assert.Equal(t, tt.expectedScore, score)
			assert.Equal(t, tt.expectedStatus, status)
		})
	}
}

func TestScoreLocation(t *testing.T) {
	college := models.College{Location: "Mumbai", Country: "India"}

	assert.Equal(t, 1.0, scoreLocation(college, []string{"india"}))
	assert.Equal(t, 1.0, scoreLocation(college, []string{"Mumbai"}))
	assert.Equal(t, 0.5, scoreLocation(college, []string{"Berlin"}))
	assert.Equal(t, 0.7, scoreLocation(college, nil))
}

func TestScoreRanking(t *testing.T) {
	assert.Equal(t, 1.0, scoreRanking(1))
	assert.InDelta(t, 0.96, scoreRanking(3), 1e-9)
	assert.Equal(t, 0.0, scoreRanking(51))
	assert.Equal(t, 0.0, scoreRanking(500))
	// An unranked college is treated as rank 100 and scores nothing.
	assert.Equal(t, 0.0, scoreRanking(0))
}

func TestMatchCoursesBothDirections(t *testing.T) {
	offered := []string{"B.Tech Computer Science", "MBA", "Fine Arts"}

	matched := matchCourses(offered, []string{"Computer Science"})
	require.Len(t, matched, 1)
	assert.Equal(t, "B.Tech Computer Science", matched[0])

	// Desired course longer than the offered name also matches.
	matched = matchCourses(offered, []string{"MBA in Finance"})
	require.Len(t, matched, 1)
	assert.Equal(t, "MBA", matched[0])
}
