// internal/workers/safety/detect-scam-content/models.go
package detectscamcontent

type Input struct {
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
}

type Output struct {
	ScamScore      int      `json:"scamScore"`
	Verdict        string   `json:"verdict"`
	Recommendation string   `json:"recommendation"`
	Warnings       []string `json:"warnings"`
	MatchedRules   int      `json:"matchedRules"`
	TrustedSource  bool     `json:"trustedSource"`
}

// auditRecord is the document indexed for each analysis.
type auditRecord struct {
	Source       string   `json:"source"`
	ScamScore    int      `json:"scamScore"`
	Verdict      string   `json:"verdict"`
	MatchedRules []string `json:"matchedRules"`
	AnalyzedAt   string   `json:"analyzedAt"`
}
