// internal/workers/guidance/recommend-careers/models.go
package recommendcareers

import "careerguide-workers/internal/models"

type Input struct {
	UserID      string                    `json:"userId,omitempty"`
	SkillScores map[string]float64        `json:"skillScores"`
	Personality models.PersonalityProfile `json:"personality"`
	Subjects    []string                  `json:"subjects"`
	Interests   []string                  `json:"interests"`
	TopN        int                       `json:"topN,omitempty"`
}

type Output struct {
	Recommendations []models.CareerRecommendation `json:"careerRecommendations"`
}
