// internal/workers/assessment/classify-personality/models.go
package classifypersonality

import "careerguide-workers/internal/models"

type Input struct {
	UserID  string              `json:"userId,omitempty"`
	Answers []models.QuizAnswer `json:"personalityAnswers"`
}

type Output struct {
	Personality models.PersonalityProfile `json:"personality"`
	Reference   *models.MBTIInfo          `json:"mbtiReference,omitempty"`
}
