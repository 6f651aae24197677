// internal/models/profile.go
package models

// StudentProfile is the assessment payload submitted on behalf of a student.
// The userId is an opaque key supplied by the auth collaborator; it is never
// inspected or validated here.
type StudentProfile struct {
	UserID             string             `json:"userId,omitempty"`
	Name               string             `json:"name"`
	Age                int                `json:"age"`
	Grade              string             `json:"grade"`
	Marks10th          map[string]float64 `json:"marks10th"`
	Marks12th          map[string]float64 `json:"marks12th"`
	SubjectPreferences []string           `json:"subjectPreferences"`
	Interests          []string           `json:"interests"`
	PersonalityAnswers []QuizAnswer       `json:"personalityAnswers"`
	FamilyBudget       float64            `json:"familyBudget"`
	BudgetCurrency     string             `json:"budgetCurrency"`
	PreferredLocations []string           `json:"preferredLocations"`
}

// QuizAnswer carries the per-dimension score deltas declared by one selected
// personality-quiz option. Keys are MBTI letters (E,I,S,N,T,F,J,P) or Big
// Five trait names.
type QuizAnswer struct {
	Scores map[string]float64 `json:"scores"`
}

// AverageMarks returns the mean mark across both mark sheets, 0 when empty.
func (p StudentProfile) AverageMarks() float64 {
	sum, n := 0.0, 0
	for _, m := range p.Marks10th {
		sum += m
		n++
	}
	for _, m := range p.Marks12th {
		sum += m
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Subjects returns the union of subject names across both mark sheets.
func (p StudentProfile) Subjects() []string {
	seen := make(map[string]bool, len(p.Marks10th)+len(p.Marks12th))
	var out []string
	for subj := range p.Marks10th {
		if !seen[subj] {
			seen[subj] = true
			out = append(out, subj)
		}
	}
	for subj := range p.Marks12th {
		if !seen[subj] {
			seen[subj] = true
			out = append(out, subj)
		}
	}
	return out
}
