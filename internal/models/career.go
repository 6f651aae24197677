// internal/models/career.go
package models

// SalaryTable maps a career stage ("entry", "mid", "senior") to per-currency
// annual figures, e.g. Salary["entry"]["USD"] = 95000.
type SalaryTable map[string]map[string]int

// Career is an immutable reference-data entity loaded from the catalog store.
type Career struct {
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	Description    string             `json:"description"`
	Difficulty     int                `json:"difficulty"`     // 1-10
	AutomationRisk float64            `json:"automationRisk"` // 0-1
	JobGrowthRate  float64            `json:"jobGrowthRate"`  // e.g. 0.12
	RequiredSkills []string           `json:"requiredSkills"` // ordered, used by roadmap
	TraitsRequired map[string]float64 `json:"traitsRequired"` // skill key -> required level 0-1
	PersonalityFit []string           `json:"personalityFit"` // MBTI codes
	Subjects       []string           `json:"subjects"`       // academic subjects, "any" = wildcard
	Education      string             `json:"education"`
	Salary         SalaryTable        `json:"salary"`
}

// EntrySalary returns the entry-stage salary for a currency, falling back to
// the documented default when the career carries no figure for it.
func (c Career) EntrySalary(currency string) int { return c.stageSalary("entry", currency, 50000) }

// MidSalary returns the mid-stage salary for a currency.
func (c Career) MidSalary(currency string) int { return c.stageSalary("mid", currency, 80000) }

// SeniorSalary returns the senior-stage salary for a currency.
func (c Career) SeniorSalary(currency string) int { return c.stageSalary("senior", currency, 120000) }

func (c Career) stageSalary(stage, currency string, fallback int) int {
	if byCurrency, ok := c.Salary[stage]; ok {
		if v, ok := byCurrency[currency]; ok {
			return v
		}
	}
	return fallback
}
