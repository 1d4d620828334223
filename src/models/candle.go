package models

import "time"

type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

type Candles []*Candle

// Closes returns the close prices in timestamp order.
func (c Candles) Closes() []float64 {
	closes := make([]float64, len(c))
	for i, candle := range c {
		closes[i] = candle.Close
	}

	return closes
}

func (c Candles) LastClose() (float64, bool) {
	if len(c) == 0 {
		return 0, false
	}

	return c[len(c)-1].Close, true
}
