// internal/workers/guidance/find-colleges/models.go
package findcolleges

type Input struct {
	CareerName         string   `json:"careerName"`
	Budget             float64  `json:"budget,omitempty"`
	Currency           string   `json:"currency,omitempty"`
	PreferredLocations []string `json:"preferredLocations,omitempty"`
}

type Output struct {
	Colleges []CollegeMatch `json:"collegeRecommendations"`
}

// CollegeMatch is one ranked college with its suitability breakdown.
type CollegeMatch struct {
	Rank             int      `json:"rank"`
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	Country          string   `json:"country"`
	SuitabilityScore float64  `json:"suitability_score"`
	Fees             float64  `json:"fees"`
	Currency         string   `json:"currency"`
	BudgetStatus     string   `json:"budget_status"`
	PlacementRate    string   `json:"placement_rate"`
	MatchedCourses   []string `json:"matched_courses"`
	Scholarships     []string `json:"scholarships"`
}
