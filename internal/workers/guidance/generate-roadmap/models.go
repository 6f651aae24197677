// internal/workers/guidance/generate-roadmap/models.go
package generateroadmap

type Input struct {
	CareerName string `json:"careerName"`
}

type Output struct {
	CareerName    string  `json:"careerName"`
	TotalDuration string  `json:"total_duration"`
	Roadmap       []Phase `json:"roadmap"`
}

// Phase is one year of the five-year plan.
type Phase struct {
	Year        int      `json:"year"`
	Title       string   `json:"title"`
	Goals       []string `json:"goals"`
	FocusSkills []string `json:"skills_to_develop,omitempty"`
	Courses     []string `json:"recommended_courses,omitempty"`
	Milestones  []string `json:"milestones"`
}
