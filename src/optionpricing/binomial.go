package optionpricing

import (
	"fmt"
	"math"
)

// BinomialModel prices a European option on a Cox-Ross-Rubinstein
// recombining tree. Maturity is taken as raw time in the units the rate and
// volatility are quoted in; it is intentionally not divided by 365, unlike
// the other engines. The tree recombines (d = 1/u), so backward induction
// runs in O(timeSteps) time and space, which keeps step counts in the tens
// of thousands tractable.
type BinomialModel struct {
	Spot         float64
	Strike       float64
	Maturity     float64
	RiskFreeRate float64
	Volatility   float64
	TimeSteps    int
}

func NewBinomialModel(spot float64, strike float64, maturity float64, riskFreeRate float64, volatility float64, timeSteps int) (*BinomialModel, error) {
	if timeSteps < 1 {
		return nil, fmt.Errorf("NewBinomialModel: found %d: %w", timeSteps, InvalidTimeStepsErr)
	}

	return &BinomialModel{
		Spot:         spot,
		Strike:       strike,
		Maturity:     maturity,
		RiskFreeRate: riskFreeRate,
		Volatility:   volatility,
		TimeSteps:    timeSteps,
	}, nil
}

func (m *BinomialModel) CalcCallPrice() (float64, error) {
	return m.calcPrice(OptionTypeCall)
}

func (m *BinomialModel) CalcPutPrice() (float64, error) {
	return m.calcPrice(OptionTypePut)
}

func (m *BinomialModel) calcPrice(optionType OptionType) (float64, error) {
	dt := m.Maturity / float64(m.TimeSteps)
	u := math.Exp(m.Volatility * math.Sqrt(dt))
	d := 1.0 / u

	a := math.Exp(m.RiskFreeRate * dt) // risk free compounded return
	p := (a - d) / (u - d)             // risk neutral up probability
	q := 1.0 - p                       // risk neutral down probability

	// Terminal payoffs for the timeSteps+1 terminal nodes. The buffer is
	// reused across induction rounds; only its logical size shrinks.
	values := make([]float64, m.TimeSteps+1)
	for j := 0; j <= m.TimeSteps; j++ {
		terminalPrice := m.Spot * math.Pow(u, float64(j)) * math.Pow(d, float64(m.TimeSteps-j))

		switch optionType {
		case OptionTypeCall:
			values[j] = math.Max(terminalPrice-m.Strike, 0)
		case OptionTypePut:
			values[j] = math.Max(m.Strike-terminalPrice, 0)
		default:
			return 0, fmt.Errorf("BinomialModel.calcPrice: found %q: %w", optionType, InvalidOptionTypeErr)
		}
	}

	discount := math.Exp(-m.RiskFreeRate * dt)
	for n := m.TimeSteps; n > 0; n-- {
		for j := 0; j < n; j++ {
			values[j] = discount * (p*values[j+1] + q*values[j])
		}
	}

	return values[0], nil
}
