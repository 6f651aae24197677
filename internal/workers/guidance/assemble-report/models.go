// internal/workers/guidance/assemble-report/models.go
package assemblereport

import "careerguide-workers/internal/models"

// Input gathers every upstream worker's output plus the original profile.
// Field names line up with the process variables those workers complete
// their jobs with.
type Input struct {
	StudentProfile         models.StudentProfile         `json:"studentProfile"`
	Personality            models.PersonalityProfile     `json:"personality"`
	SkillScores            map[string]float64            `json:"skillScores"`
	AverageMarks           float64                       `json:"averageMarks"`
	CareerRecommendations  []models.CareerRecommendation `json:"careerRecommendations"`
	SalaryProjections      map[string]interface{}        `json:"salaryProjections"`
	JobMarketOutlook       models.JobMarketOutlook       `json:"jobMarketOutlook"`
	CollegeRecommendations []models.CollegeSummary       `json:"collegeRecommendations"`
	Roadmap                interface{}                   `json:"roadmap"`
}

type Output struct {
	Report models.Report `json:"report"`
}
