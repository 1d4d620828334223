package optionpricing

import "math"

// BlackScholesModel prices a European option with the Black-Scholes-Merton
// closed form. The model performs no input validation: zero maturity or
// volatility produces NaN/Inf straight from the formula, so callers must
// reject degenerate parameters before construction.
type BlackScholesModel struct {
	Spot         float64
	Strike       float64
	Maturity     float64 // years
	RiskFreeRate float64
	Volatility   float64
}

func NewBlackScholesModel(spot float64, strike float64, daysToMaturity float64, riskFreeRate float64, volatility float64) *BlackScholesModel {
	return &BlackScholesModel{
		Spot:         spot,
		Strike:       strike,
		Maturity:     daysToMaturity / 365.0,
		RiskFreeRate: riskFreeRate,
		Volatility:   volatility,
	}
}

func (m *BlackScholesModel) d1d2() (float64, float64) {
	volSqrtT := m.Volatility * math.Sqrt(m.Maturity)
	d1 := (math.Log(m.Spot/m.Strike) + (m.RiskFreeRate+0.5*m.Volatility*m.Volatility)*m.Maturity) / volSqrtT
	d2 := d1 - volSqrtT
	return d1, d2
}

func (m *BlackScholesModel) CalcCallPrice() (float64, error) {
	d1, d2 := m.d1d2()
	return m.Spot*normCdf(d1) - m.Strike*math.Exp(-m.RiskFreeRate*m.Maturity)*normCdf(d2), nil
}

func (m *BlackScholesModel) CalcPutPrice() (float64, error) {
	d1, d2 := m.d1d2()
	return m.Strike*math.Exp(-m.RiskFreeRate*m.Maturity)*normCdf(-d2) - m.Spot*normCdf(-d1), nil
}

// normCdf is the standard normal cumulative distribution function.
func normCdf(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}
