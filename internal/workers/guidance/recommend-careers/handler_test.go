// internal/workers/guidance/recommend-careers/handler_test.go
package recommendcareers

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

func newTestHandler(t *testing.T, store refdata.Store) *Handler {
	t.Helper()
	if store == nil {
		store = twoCareersStore()
	}
	h, err := NewHandler(LoadConfig(), store, logger.NewNop())
	require.NoError(t, err)
	return h
}

func twoCareersStore() *refdata.StaticStore {
	return &refdata.StaticStore{
		CareerList: []models.Career{
			{
				Name:           "Software Engineer",
				Category:       "Technology",
				Difficulty:     7,
				AutomationRisk: 0.15,
				TraitsRequired: map[string]float64{"analytical": 0.8, "technical": 0.9, "problem_solving": 0.85},
				PersonalityFit: []string{"INTJ", "INTP", "ISTJ"},
				Subjects:       []string{"math", "computer"},
			},
			{
				Name:           "Graphic Designer",
				Category:       "Creative",
				Difficulty:     5,
				AutomationRisk: 0.45,
				TraitsRequired: map[string]float64{"creative": 0.9, "detail_oriented": 0.6},
				PersonalityFit: []string{"ISFP", "INFP", "ENFP"},
				Subjects:       []string{"arts"},
			},
		},
	}
}

func techStudentInput() *Input {
	return &Input{
		SkillScores: map[string]float64{
			"analytical":      0.81,
			"technical":       0.78,
			"problem_solving": 0.805,
			"creative":        0.48,
			"detail_oriented": 0.74,
		},
		Personality: models.PersonalityProfile{MBTIType: "INTJ"},
		Subjects:    []string{"Math", "Computer", "Science"},
		Interests:   []string{"technology"},
	}
}

func TestNewHandlerRejectsSkewedWeights(t *testing.T) {
	cfg := LoadConfig()
	cfg.Weights.Skill = 0.5

	_, err := NewHandler(cfg, twoCareersStore(), logger.NewNop())
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeInvalidMatchWeight, stdErr.Code)
}

func TestExecuteRanksTechProfileAboveCreative(t *testing.T) {
	h := newTestHandler(t, nil)

	output, err := h.Execute(context.Background(), techStudentInput())
	require.NoError(t, err)
	require.Len(t, output.Recommendations, 2)

	top := output.Recommendations[0]
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, "Software Engineer", top.CareerName)
	assert.Equal(t, 91.2, top.MatchPercentage)
	assert.Equal(t, "Low", top.AutomationRisk)
	assert.Equal(t, 94.2, top.MatchBreakdown["skill_match"])
	assert.Equal(t, 95.0, top.MatchBreakdown["personality_match"])
	assert.Equal(t, 100.0, top.MatchBreakdown["academic_match"])
	assert.Equal(t, 80.0, top.MatchBreakdown["interest_match"])
	assert.Equal(t, 50.0, top.MatchBreakdown["aptitude_match"])

	second := output.Recommendations[1]
	assert.Equal(t, 2, second.Rank)
	assert.Equal(t, "Graphic Designer", second.CareerName)
	assert.Equal(t, 47.7, second.MatchPercentage)
	assert.Equal(t, "Medium", second.AutomationRisk)
}

func TestExecuteNegativeTopN(t *testing.T) {
	h := newTestHandler(t, nil)

	input := techStudentInput()
	input.TopN = -1

	_, err := h.Execute(context.Background(), input)
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeInvalidTopN, stdErr.Code)
}

func TestExecuteTopNZeroUsesDefault(t *testing.T) {
	h := newTestHandler(t, refdata.NewDefaultStore())

	output, err := h.Execute(context.Background(), techStudentInput())
	require.NoError(t, err)
	assert.Len(t, output.Recommendations, h.config.DefaultTopN)
}

func TestExecuteTopNLimitsResults(t *testing.T) {
	h := newTestHandler(t, nil)

	input := techStudentInput()
	input.TopN = 1

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, output.Recommendations, 1)
	assert.Equal(t, "Software Engineer", output.Recommendations[0].CareerName)
}

func TestExecuteEmptyCatalogFails(t *testing.T) {
	h := newTestHandler(t, &refdata.StaticStore{})

	_, err := h.Execute(context.Background(), techStudentInput())
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeCatalogEmpty, stdErr.Code)
}

func TestSubScoreDefaults(t *testing.T) {
	h := newTestHandler(t, nil)

	// A profile with no signal anywhere scores the midpoint on every
	// sub-score except skills, where unknown traits contribute 0.3.
	output, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	require.Len(t, output.Recommendations, 2)

	for _, rec := range output.Recommendations {
		assert.Equal(t, 50.0, rec.MatchBreakdown["personality_match"], rec.CareerName)
		assert.Equal(t, 50.0, rec.MatchBreakdown["academic_match"], rec.CareerName)
		assert.Equal(t, 50.0, rec.MatchBreakdown["interest_match"], rec.CareerName)
	}
}

func TestPersonalityMatchSharedLetters(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		name     string
		mbti     string
		fit      []string
		expected float64
	}{
		{name: "exact match", mbti: "INTJ", fit: []string{"INTJ"}, expected: exactPersonalityFit},
		{name: "case insensitive exact", mbti: "intj", fit: []string{"INTJ"}, expected: exactPersonalityFit},
		{name: "three shared letters", mbti: "INTJ", fit: []string{"INTP"}, expected: 0.75},
		{name: "one shared letter", mbti: "INTJ", fit: []string{"ESFJ"}, expected: 0.25},
		{name: "best of several", mbti: "INTJ", fit: []string{"ESFP", "INFJ"}, expected: 0.75},
		{name: "no fit list", mbti: "INTJ", fit: nil, expected: neutralScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, h.personalityMatch(tt.mbti, tt.fit))
		})
	}
}

func TestSkillMatchDistanceFromRequiredLevel(t *testing.T) {
	h := newTestHandler(t, nil)

	// Exceeding a requirement is penalized the same as falling short of it.
	assert.InDelta(t, 0.5, h.skillMatch(
		map[string]float64{"analytical": 1.0},
		map[string]float64{"analytical": 0.5},
	), 1e-9)
	assert.InDelta(t, 0.5, h.skillMatch(
		map[string]float64{"analytical": 0.0},
		map[string]float64{"analytical": 0.5},
	), 1e-9)

	// An unscored trait contributes the 0.3 default.
	assert.InDelta(t, 0.5, h.skillMatch(
		nil,
		map[string]float64{"analytical": 0.8},
	), 1e-9)

	// No requirements means no signal.
	assert.Equal(t, neutralScore, h.skillMatch(map[string]float64{"analytical": 0.9}, nil))
}

func TestAcademicMatchSubjectOverlap(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		name     string
		user     []string
		career   []string
		expected float64
	}{
		{name: "full overlap", user: []string{"math", "computer"}, career: []string{"math", "computer"}, expected: 1.0},
		{name: "partial overlap", user: []string{"math"}, career: []string{"math", "computer"}, expected: 0.5},
		{name: "case insensitive", user: []string{"Math", "COMPUTER"}, career: []string{"math", "computer"}, expected: 1.0},
		{name: "wildcard satisfies all", user: []string{"history"}, career: []string{"any"}, expected: 1.0},
		{name: "wildcard alongside others", user: []string{"history"}, career: []string{"any", "math"}, expected: 1.0},
		{name: "no overlap", user: []string{"arts"}, career: []string{"math", "computer"}, expected: 0.0},
		{name: "no career subjects", user: []string{"math"}, career: nil, expected: neutralScore},
		{name: "no user subjects", user: nil, career: []string{"math"}, expected: neutralScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, h.academicMatch(tt.user, tt.career), 1e-9)
		})
	}
}

func TestWildcardSubjectsScoreFullAcademicMatch(t *testing.T) {
	store := &refdata.StaticStore{
		CareerList: []models.Career{
			{Name: "Digital Marketing Specialist", Category: "Marketing", Subjects: []string{"any"}},
		},
	}
	h := newTestHandler(t, store)

	output, err := h.Execute(context.Background(), techStudentInput())
	require.NoError(t, err)
	require.Len(t, output.Recommendations, 1)
	assert.Equal(t, 100.0, output.Recommendations[0].MatchBreakdown["academic_match"])
}

func TestSubjectOverlapDrivesRanking(t *testing.T) {
	// Two otherwise identical careers: the one whose subjects the student
	// actually takes must rank strictly higher.
	store := &refdata.StaticStore{
		CareerList: []models.Career{
			{Name: "Mismatched Path", Category: "Technology", Subjects: []string{"biology", "chemistry"}},
			{Name: "Matched Path", Category: "Technology", Subjects: []string{"math", "computer"}},
		},
	}
	h := newTestHandler(t, store)

	output, err := h.Execute(context.Background(), techStudentInput())
	require.NoError(t, err)
	require.Len(t, output.Recommendations, 2)
	assert.Equal(t, "Matched Path", output.Recommendations[0].CareerName)
	assert.Greater(t,
		output.Recommendations[0].MatchPercentage,
		output.Recommendations[1].MatchPercentage)
}

func TestInterestMatchCategoryOnly(t *testing.T) {
	h := newTestHandler(t, nil)
	career := models.Career{Name: "Software Engineer", Category: "Technology"}

	assert.Equal(t, 0.8, h.interestMatch([]string{"tech"}, career))
	assert.Equal(t, 0.8, h.interestMatch([]string{"information technology careers"}, career))
	// Overlap with the career name alone does not count.
	assert.Equal(t, 0.5, h.interestMatch([]string{"software"}, career))
	assert.Equal(t, 0.5, h.interestMatch([]string{"painting"}, career))
	assert.Equal(t, 0.5, h.interestMatch(nil, career))
}
