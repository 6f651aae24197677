// internal/workers/assessment/analyze-skills/models.go
package analyzeskills

import "careerguide-workers/internal/models"

type Input struct {
	StudentProfile models.StudentProfile `json:"studentProfile"`
}

type Output struct {
	SkillScores  map[string]float64 `json:"skillScores"`
	Subjects     []string           `json:"subjects"`
	AverageMarks float64            `json:"averageMarks"`
}
