// internal/workers/assessment/analyze-skills/handler_test.go
package analyzeskills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/models"
)

func newTestHandler() *Handler {
	return NewHandler(LoadConfig(), logger.NewNop())
}

func TestExecuteComputesWeightedScores(t *testing.T) {
	h := newTestHandler()

	input := &Input{
		StudentProfile: models.StudentProfile{
			Marks10th: map[string]float64{
				"Mathematics": 90,
				"Science":     80,
				"Computer":    70,
			},
			Marks12th: map[string]float64{
				"English":  60,
				"History":  50,
				"Arts":     40,
				"Commerce": 55,
			},
		},
	}

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	expected := map[string]float64{
		"analytical":      0.81,
		"technical":       0.78,
		"communication":   0.54,
		"creative":        0.48,
		"leadership":      0.535,
		"detail_oriented": 0.74,
		"problem_solving": 0.805,
		"research":        0.71,
	}
	for skill, want := range expected {
		assert.InDelta(t, want, output.SkillScores[skill], 1e-9, skill)
	}

	// Normalized subjects ride along for the downstream career matcher.
	assert.Equal(t,
		[]string{"arts", "commerce", "computer", "english", "math", "science", "social science"},
		output.Subjects)
}

func TestExecuteDefaultsMissingSubjects(t *testing.T) {
	h := newTestHandler()

	output, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)

	// Every skill's weights sum to 1, so all-default marks score 0.5 across
	// the board.
	require.Len(t, output.SkillScores, len(skillWeights))
	for skill, score := range output.SkillScores {
		assert.Equal(t, 0.5, score, skill)
	}
	assert.Equal(t, 0.0, output.AverageMarks)
}

func TestNormalizeMarksAveragesDuplicates(t *testing.T) {
	marks := normalizeMarks(
		map[string]float64{"Physics": 80, "Chemistry": 70},
		map[string]float64{"Physics": 90},
	)

	// Three observations fold into the science subject: (80+70+90)/3.
	assert.InDelta(t, 80.0, marks[subjScience], 1e-9)
}

func TestNormalizeMarksAliasesAndPassthrough(t *testing.T) {
	marks := normalizeMarks(map[string]float64{
		"  MATHS ":    95,
		"Sanskrit":    88,
		"Accountancy": 72,
	})

	assert.Equal(t, 95.0, marks[subjMath])
	assert.Equal(t, 72.0, marks[subjCommerce])
	// Unknown subjects survive lowercased but never reach a weight table.
	assert.Equal(t, 88.0, marks["sanskrit"])
}

func TestExecuteClampsAndRounds(t *testing.T) {
	h := newTestHandler()

	input := &Input{
		StudentProfile: models.StudentProfile{
			Marks10th: map[string]float64{
				"math": 100, "science": 100, "computer": 100,
				"english": 100, "social": 100, "commerce": 100, "arts": 100,
			},
		},
	}

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	for skill, score := range output.SkillScores {
		assert.LessOrEqual(t, score, 1.0, skill)
		assert.Equal(t, 1.0, score, skill)
	}
	assert.Equal(t, 100.0, output.AverageMarks)
}

func TestExecuteReportsAverageMarks(t *testing.T) {
	h := newTestHandler()

	input := &Input{
		StudentProfile: models.StudentProfile{
			Marks10th: map[string]float64{"math": 80},
			Marks12th: map[string]float64{"english": 60},
		},
	}

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, output.AverageMarks, 1e-9)
}
