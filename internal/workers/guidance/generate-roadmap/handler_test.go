// internal/workers/guidance/generate-roadmap/handler_test.go
package generateroadmap

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

func newTestHandler(store refdata.Store) *Handler {
	if store == nil {
		store = refdata.NewDefaultStore()
	}
	return NewHandler(LoadConfig(), store, logger.NewNop())
}

func TestExecuteBuildsFivePhases(t *testing.T) {
	h := newTestHandler(nil)

	output, err := h.Execute(context.Background(), &Input{CareerName: "Software Engineer"})
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", output.CareerName)
	assert.Equal(t, "5 years", output.TotalDuration)
	require.Len(t, output.Roadmap, 5)

	titles := []string{
		"Foundation Building",
		"Core Skill Development",
		"Specialization & Practical Experience",
		"Professional Preparation",
		"Career Launch & Growth",
	}
	for i, title := range titles {
		assert.Equal(t, i+1, output.Roadmap[i].Year)
		assert.Equal(t, title, output.Roadmap[i].Title)
		assert.NotEmpty(t, output.Roadmap[i].Goals)
		assert.NotEmpty(t, output.Roadmap[i].Milestones)
	}
}

func TestExecuteLaterPhasesCarryFixedLists(t *testing.T) {
	h := newTestHandler(nil)

	output, err := h.Execute(context.Background(), &Input{CareerName: "Software Engineer"})
	require.NoError(t, err)

	fourth := output.Roadmap[3]
	assert.Equal(t, []string{"Interview Skills", "Professional Communication", "Industry Tools"}, fourth.FocusSkills)
	assert.Equal(t, []string{"Interview Preparation", "Resume Building", "LinkedIn Optimization"}, fourth.Courses)

	fifth := output.Roadmap[4]
	assert.Equal(t, []string{"Leadership", "Advanced Domain Knowledge", "Soft Skills"}, fifth.FocusSkills)
	assert.Equal(t, []string{"Leadership Development", "Advanced Specialization"}, fifth.Courses)
}

func TestAdvancedCoursesByCategory(t *testing.T) {
	assert.Equal(t, []string{"AWS/Azure Certification", "Advanced Programming"}, advancedCoursesFor("Technology"))
	assert.Equal(t, defaultAdvancedCourses, advancedCoursesFor("Agriculture"))
}

func TestExecuteEmptySkillListUsesPlaceholders(t *testing.T) {
	store := &refdata.StaticStore{
		CareerList: []models.Career{{Name: "Generalist", Category: "Media"}},
	}
	h := newTestHandler(store)

	output, err := h.Execute(context.Background(), &Input{CareerName: "Generalist"})
	require.NoError(t, err)
	require.Len(t, output.Roadmap, 5)

	assert.Contains(t, output.Roadmap[0].Goals, "Begin learning basics of: the core domain")
	assert.Contains(t, output.Roadmap[2].Goals, "Specialize in: core domain")
	for i, phase := range output.Roadmap {
		assert.Equal(t, i+1, phase.Year)
	}
}

func TestExecuteFocusSkillWindows(t *testing.T) {
	h := newTestHandler(nil)

	// Software Engineer lists Programming, Data Structures, System Design,
	// Databases, Cloud Platforms.
	output, err := h.Execute(context.Background(), &Input{CareerName: "Software Engineer"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Programming", "Data Structures"}, output.Roadmap[0].FocusSkills)
	assert.Equal(t, []string{"Data Structures", "System Design"}, output.Roadmap[1].FocusSkills)
	assert.Equal(t, []string{"System Design", "Databases", "Cloud Platforms"}, output.Roadmap[2].FocusSkills)
}

func TestExecuteShortSkillListShrinksWindows(t *testing.T) {
	store := &refdata.StaticStore{
		CareerList: []models.Career{{
			Name:           "Psychologist",
			Category:       "Healthcare",
			RequiredSkills: []string{"Counseling"},
		}},
	}
	h := newTestHandler(store)

	output, err := h.Execute(context.Background(), &Input{CareerName: "Psychologist"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Counseling"}, output.Roadmap[0].FocusSkills)
	assert.Empty(t, output.Roadmap[1].FocusSkills)
	assert.Empty(t, output.Roadmap[2].FocusSkills)
}

func TestBeginnerCoursesMatchDedupeAndCap(t *testing.T) {
	h := newTestHandler(nil)

	courses := h.beginnerCoursesFor([]string{"Python", "Python Scripting", "Data Visualization"})
	assert.Equal(t, []string{
		"Python for Everybody (Coursera)",
		"Google Data Analytics Certificate (Coursera)",
	}, courses)

	many := h.beginnerCoursesFor([]string{
		"Python", "Programming", "Data Analysis", "Machine Learning", "Design Tools", "Marketing",
	})
	assert.Len(t, many, h.config.MaxCourses)
}

func TestBeginnerCoursesFallback(t *testing.T) {
	h := newTestHandler(nil)

	courses := h.beginnerCoursesFor([]string{"Quantum Basket Weaving"})
	assert.Equal(t, []string{fallbackCourse}, courses)
}

func TestExecuteUnknownCareer(t *testing.T) {
	h := newTestHandler(nil)

	_, err := h.Execute(context.Background(), &Input{CareerName: "Dragon Tamer"})
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeCareerNotFound, stdErr.Code)
}

func TestCatalogCoursesEmptyCatalog(t *testing.T) {
	store := &refdata.StaticStore{
		CareerList: []models.Career{{
			Name:           "Software Engineer",
			RequiredSkills: []string{"Programming", "SQL", "Cloud Platforms"},
		}},
	}
	h := newTestHandler(store)

	output, err := h.Execute(context.Background(), &Input{CareerName: "Software Engineer"})
	require.NoError(t, err)
	// Empty catalog yields a roadmap without catalog suggestions.
	assert.Empty(t, output.Roadmap[1].Courses)
}
