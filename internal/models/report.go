// internal/models/report.go
package models

// Report is the assembled guidance report handed to the web layer. Field
// names follow the consumer contract; the assembler only merges component
// outputs, it never re-scores.
type Report struct {
	ReportID               string                 `json:"reportId"`
	GeneratedAt            string                 `json:"generatedAt"`
	StudentInfo            StudentInfo            `json:"student_info"`
	PersonalityAnalysis    PersonalityAnalysis    `json:"personality_analysis"`
	SkillAnalysis          SkillAnalysis          `json:"skill_analysis"`
	CareerRecommendations  []CareerRecommendation `json:"career_recommendations"`
	SalaryProjections      map[string]interface{} `json:"salary_projections"`
	JobMarketOutlook       JobMarketOutlook       `json:"job_market_outlook"`
	CollegeRecommendations []CollegeSummary       `json:"college_recommendations"`
	FiveYearRoadmap        interface{}            `json:"5_year_roadmap"`
	NextSteps              []string               `json:"next_steps"`
}

type StudentInfo struct {
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	Grade        string  `json:"grade"`
	AverageMarks float64 `json:"average_marks"`
}

type PersonalityAnalysis struct {
	MBTIType      string        `json:"mbti_type"`
	BigFiveTraits BigFiveTraits `json:"big_five_traits"`
	KeyStrengths  []string      `json:"key_strengths"`
}

type SkillAnalysis struct {
	TopSkills           []string           `json:"top_skills"`
	AreasForImprovement []string           `json:"areas_for_improvement"`
	DetailedScores      map[string]float64 `json:"detailed_scores"`
}

type CareerRecommendation struct {
	Rank            int                `json:"rank"`
	CareerName      string             `json:"career_name"`
	MatchPercentage float64            `json:"match_percentage"`
	Category        string             `json:"category"`
	Description     string             `json:"description"`
	DifficultyLevel int                `json:"difficulty_level"`
	AutomationRisk  string             `json:"automation_risk"`
	RequiredSkills  []string           `json:"required_skills"`
	Education       string             `json:"education_required"`
	MatchBreakdown  map[string]float64 `json:"match_breakdown"`
}

type JobMarketOutlook struct {
	TenYearOutlook string `json:"10_year_outlook"`
	GrowthRate     string `json:"growth_rate"`
	AutomationRisk string `json:"automation_risk"`
	AIImpact       string `json:"ai_impact"`
}

type CollegeSummary struct {
	Rank             int      `json:"rank"`
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	SuitabilityScore float64  `json:"suitability_score"`
	Fees             float64  `json:"fees"`
	PlacementRate    string   `json:"placement_rate"`
	Scholarships     []string `json:"scholarships"`
}
