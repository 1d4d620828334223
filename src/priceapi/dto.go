package priceapi

import (
	"fmt"

	"github.com/jiaming2012/option-pricing/src/optionpricing"
)

type PriceOptionRequest struct {
	Method         optionpricing.PricingMethod `schema:"method,required" json:"method"`
	OptionType     optionpricing.OptionType    `schema:"optionType,required" json:"option_type"`
	Spot           float64                     `schema:"spot,required" json:"spot"`
	Strike         float64                     `schema:"strike,required" json:"strike"`
	DaysToMaturity int                         `schema:"daysToMaturity,required" json:"days_to_maturity"`
	RiskFreeRate   float64                     `schema:"riskFreeRate" json:"risk_free_rate"`
	Volatility     float64                     `schema:"volatility,required" json:"volatility"`
	NumSimulations int                         `schema:"numSimulations" json:"num_simulations"`
	TimeSteps      int                         `schema:"timeSteps" json:"time_steps"`
}

// Validate rejects degenerate parameters at the application boundary: the
// engines themselves do not clamp, and zero volatility or maturity would
// propagate NaN out of the formulas.
func (req *PriceOptionRequest) Validate() error {
	if err := req.Method.Validate(); err != nil {
		return err
	}

	if err := req.OptionType.Validate(); err != nil {
		return err
	}

	if req.Spot <= 0 {
		return fmt.Errorf("spot price must be positive, found %v", req.Spot)
	}

	if req.Strike <= 0 {
		return fmt.Errorf("strike price must be positive, found %v", req.Strike)
	}

	if req.DaysToMaturity <= 0 {
		return fmt.Errorf("days to maturity must be positive, found %v", req.DaysToMaturity)
	}

	if req.Volatility <= 0 {
		return fmt.Errorf("volatility must be positive, found %v", req.Volatility)
	}

	return nil
}

type PriceOptionResponse struct {
	Method     optionpricing.PricingMethod `json:"method"`
	OptionType optionpricing.OptionType    `json:"option_type"`
	Price      float64                     `json:"price"`
}

type CreateSimulationRequest struct {
	Spot           float64 `json:"spot"`
	Strike         float64 `json:"strike"`
	DaysToMaturity int     `json:"days_to_maturity"`
	RiskFreeRate   float64 `json:"risk_free_rate"`
	Volatility     float64 `json:"volatility"`
	NumSimulations int     `json:"num_simulations"`
}

func (req *CreateSimulationRequest) Validate() error {
	if req.Spot <= 0 {
		return fmt.Errorf("spot price must be positive, found %v", req.Spot)
	}

	if req.Strike <= 0 {
		return fmt.Errorf("strike price must be positive, found %v", req.Strike)
	}

	if req.DaysToMaturity <= 0 {
		return fmt.Errorf("days to maturity must be positive, found %v", req.DaysToMaturity)
	}

	if req.Volatility <= 0 {
		return fmt.Errorf("volatility must be positive, found %v", req.Volatility)
	}

	return nil
}

type CreateSimulationResponse struct {
	SimulationID string  `json:"simulation_id"`
	CallPrice    float64 `json:"call_price"`
	PutPrice     float64 `json:"put_price"`
}

type PathSliceResponse struct {
	Strike   float64     `json:"strike"`
	NumSteps int         `json:"num_steps"`
	Paths    [][]float64 `json:"paths"`
}
