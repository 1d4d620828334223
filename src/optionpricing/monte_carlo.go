package optionpricing

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/montanaflynn/stats"
)

// defaultSeed keeps repeated runs of the full suite reproducible.
const defaultSeed int64 = 40

// MonteCarloModel prices a European option by simulating geometric Brownian
// motion paths under the risk-neutral measure and averaging discounted
// terminal payoffs. One step is simulated per calendar day to maturity.
//
// SimulatePaths must be called before either payoff calculation. A model
// instance is not safe for concurrent regeneration and reads.
type MonteCarloModel struct {
	Spot           float64
	Strike         float64
	Maturity       float64 // years
	RiskFreeRate   float64
	Volatility     float64
	NumSimulations int

	numSteps int
	dt       float64
	seed     int64
	paths    [][]float64 // numSteps rows x NumSimulations columns
}

// PathSliceResult is a read-only view of already simulated paths, used for
// external rendering alongside the strike level.
type PathSliceResult struct {
	Strike   float64
	NumSteps int
	Paths    [][]float64
}

func NewMonteCarloModel(spot float64, strike float64, daysToMaturity int, riskFreeRate float64, volatility float64, numSimulations int) *MonteCarloModel {
	return NewMonteCarloModelWithSeed(spot, strike, daysToMaturity, riskFreeRate, volatility, numSimulations, defaultSeed)
}

func NewMonteCarloModelWithSeed(spot float64, strike float64, daysToMaturity int, riskFreeRate float64, volatility float64, numSimulations int, seed int64) *MonteCarloModel {
	return &MonteCarloModel{
		Spot:           spot,
		Strike:         strike,
		Maturity:       float64(daysToMaturity) / 365.0,
		RiskFreeRate:   riskFreeRate,
		Volatility:     volatility,
		NumSimulations: numSimulations,
		numSteps:       daysToMaturity,
		dt:             (float64(daysToMaturity) / 365.0) / float64(daysToMaturity),
		seed:           seed,
	}
}

// SimulatePaths builds the full path matrix, discarding any previous one.
// Path generation is parallelized across simulations: time steps within a
// path are sequentially dependent, but every column evolves independently.
// Each column draws from its own source seeded from the model seed, so the
// matrix is identical no matter how the work is scheduled.
func (m *MonteCarloModel) SimulatePaths() error {
	if m.NumSimulations < 1 {
		return fmt.Errorf("MonteCarloModel.SimulatePaths: found %d: %w", m.NumSimulations, InvalidNumSimulationsErr)
	}

	paths := make([][]float64, m.numSteps)
	for t := range paths {
		paths[t] = make([]float64, m.NumSimulations)
	}

	for j := 0; j < m.NumSimulations; j++ {
		paths[0][j] = m.Spot
	}

	driftTerm := (m.RiskFreeRate - 0.5*m.Volatility*m.Volatility) * m.dt
	volTerm := m.Volatility * math.Sqrt(m.dt)

	numWorkers := runtime.GOMAXPROCS(0)
	if m.NumSimulations < 100 {
		numWorkers = 1
	}

	chunkSize := (m.NumSimulations + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < m.NumSimulations; start += chunkSize {
		end := start + chunkSize
		if end > m.NumSimulations {
			end = m.NumSimulations
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for j := start; j < end; j++ {
				rng := rand.New(rand.NewSource(m.seed + int64(j)))
				for t := 1; t < m.numSteps; t++ {
					z := rng.NormFloat64()
					paths[t][j] = paths[t-1][j] * math.Exp(driftTerm+volTerm*z)
				}
			}
		}(start, end)
	}

	wg.Wait()

	m.paths = paths
	return nil
}

func (m *MonteCarloModel) CalcCallPrice() (float64, error) {
	terminal, err := m.terminalPrices()
	if err != nil {
		return 0, fmt.Errorf("MonteCarloModel.CalcCallPrice: %w", err)
	}

	payoffs := make([]float64, len(terminal))
	for j, price := range terminal {
		payoffs[j] = math.Max(price-m.Strike, 0)
	}

	return m.discountedMean(payoffs)
}

func (m *MonteCarloModel) CalcPutPrice() (float64, error) {
	terminal, err := m.terminalPrices()
	if err != nil {
		return 0, fmt.Errorf("MonteCarloModel.CalcPutPrice: %w", err)
	}

	payoffs := make([]float64, len(terminal))
	for j, price := range terminal {
		payoffs[j] = math.Max(m.Strike-price, 0)
	}

	return m.discountedMean(payoffs)
}

// PathSlice returns a copy of the first count simulated columns, at most the
// total number of simulations. Purely a read of already computed state.
func (m *MonteCarloModel) PathSlice(count int) (*PathSliceResult, error) {
	if m.paths == nil {
		return nil, fmt.Errorf("MonteCarloModel.PathSlice: %w", SimulationNotRunErr)
	}

	if count < 0 {
		count = 0
	}

	if count > m.NumSimulations {
		count = m.NumSimulations
	}

	slice := make([][]float64, m.numSteps)
	for t := 0; t < m.numSteps; t++ {
		slice[t] = make([]float64, count)
		copy(slice[t], m.paths[t][:count])
	}

	return &PathSliceResult{
		Strike:   m.Strike,
		NumSteps: m.numSteps,
		Paths:    slice,
	}, nil
}

func (m *MonteCarloModel) terminalPrices() ([]float64, error) {
	if m.paths == nil {
		return nil, SimulationNotRunErr
	}

	return m.paths[m.numSteps-1], nil
}

func (m *MonteCarloModel) discountedMean(payoffs []float64) (float64, error) {
	mean, err := stats.Mean(payoffs)
	if err != nil {
		return 0, fmt.Errorf("MonteCarloModel.discountedMean: failed to calculate mean: %v", err)
	}

	return math.Exp(-m.RiskFreeRate*m.Maturity) * mean, nil
}
