package optionpricing

import "fmt"

type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

func (t OptionType) Validate() error {
	switch t {
	case OptionTypeCall:
		break
	case OptionTypePut:
		break
	default:
		return fmt.Errorf("OptionType: unsupported option type: %s: %w", t, InvalidOptionTypeErr)
	}

	return nil
}

type PricingMethod string

const (
	PricingMethodBlackScholes PricingMethod = "black_scholes"
	PricingMethodMonteCarlo   PricingMethod = "monte_carlo"
	PricingMethodBinomial     PricingMethod = "binomial"
)

func (m PricingMethod) Validate() error {
	switch m {
	case PricingMethodBlackScholes, PricingMethodMonteCarlo, PricingMethodBinomial:
		return nil
	default:
		return fmt.Errorf("PricingMethod: unsupported pricing method: %s", m)
	}
}

// PricingModel is the contract shared by all pricing engines. An engine
// prices one option contract whose parameters are fixed at construction.
type PricingModel interface {
	CalcCallPrice() (float64, error)
	CalcPutPrice() (float64, error)
}

// CalcPrice dispatches to the engine's call or put payoff calculation.
func CalcPrice(model PricingModel, optionType OptionType) (float64, error) {
	switch optionType {
	case OptionTypeCall:
		return model.CalcCallPrice()
	case OptionTypePut:
		return model.CalcPutPrice()
	default:
		return 0, fmt.Errorf("CalcPrice: found %q: %w", optionType, InvalidOptionTypeErr)
	}
}
