// internal/workers/guidance/forecast-market/models.go
package forecastmarket

import "careerguide-workers/internal/models"

type Input struct {
	CareerName string `json:"careerName"`
	Currency   string `json:"currency,omitempty"`
}

type Output struct {
	SalaryProjections map[string]interface{}  `json:"salaryProjections"`
	DemandForecast    []DemandPoint           `json:"demandForecast"`
	Outlook           models.JobMarketOutlook `json:"jobMarketOutlook"`
}

// DemandPoint is one simulated year of the demand index, base 100.
type DemandPoint struct {
	Year       int     `json:"year"`
	Index      float64 `json:"demandIndex"`
	GrowthRate string  `json:"growth_rate"`
}
