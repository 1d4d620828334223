package marketdata

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/option-pricing/src/models"
)

// tradingDaysPerYear annualizes the daily log return standard deviation.
const tradingDaysPerYear = 252.0

// AnnualizedVolatility estimates the volatility input of the pricing models
// as the sample standard deviation of daily log returns, scaled to a yearly
// horizon. At least two candles are required to form one return.
func AnnualizedVolatility(candles models.Candles) (float64, error) {
	if len(candles) < 2 {
		return 0, fmt.Errorf("AnnualizedVolatility: need at least 2 candles, found %d", len(candles))
	}

	closes := candles.Closes()

	logReturns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, fmt.Errorf("AnnualizedVolatility: non-positive close price at index %d", i)
		}

		logReturns = append(logReturns, math.Log(closes[i]/closes[i-1]))
	}

	sd, err := stats.StandardDeviationSample(logReturns)
	if err != nil {
		return 0, fmt.Errorf("AnnualizedVolatility: failed to calculate the standard deviation: %v", err)
	}

	return sd * math.Sqrt(tradingDaysPerYear), nil
}
