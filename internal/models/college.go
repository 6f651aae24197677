// internal/models/college.go
package models

// College is an immutable reference-data entity loaded from the catalog store.
type College struct {
	Name          string             `json:"name"`
	Location      string             `json:"location"`
	Country       string             `json:"country"`
	FeesPerYear   map[string]float64 `json:"feesPerYear"`   // currency -> annual fees
	Ranking       int                `json:"ranking"`       // lower is better
	PlacementRate float64            `json:"placementRate"` // 0-1
	Courses       []string           `json:"courses"`
	Scholarships  []string           `json:"scholarships"`
}

// Course is a catalog entry for an online/offline course recommendation.
type Course struct {
	Name     string   `json:"name"`
	Provider string   `json:"provider"`
	Level    string   `json:"level"` // beginner, intermediate, advanced
	Skills   []string `json:"skills"`
}

// MBTIInfo is the stored reference description for one MBTI type.
type MBTIInfo struct {
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	Careers     []string `json:"careers"`
}
