package models

// PricedOptionDTO is one row of pricing output, exportable to csv.
type PricedOptionDTO struct {
	Method         string  `json:"method" csv:"method"`
	OptionType     string  `json:"option_type" csv:"option_type"`
	Spot           float64 `json:"spot" csv:"spot"`
	Strike         float64 `json:"strike" csv:"strike"`
	DaysToMaturity int     `json:"days_to_maturity" csv:"days_to_maturity"`
	RiskFreeRate   float64 `json:"risk_free_rate" csv:"risk_free_rate"`
	Volatility     float64 `json:"volatility" csv:"volatility"`
	Price          float64 `json:"price" csv:"price"`
}
