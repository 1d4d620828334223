package optionpricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonteCarloModel(t *testing.T) {
	t.Run("Pricing before simulation fails", func(t *testing.T) {
		model := NewMonteCarloModel(100, 100, 365, 0.05, 0.2, 1000)

		_, err := model.CalcCallPrice()
		assert.ErrorIs(t, err, SimulationNotRunErr)

		_, err = model.CalcPutPrice()
		assert.ErrorIs(t, err, SimulationNotRunErr)

		_, err = model.PathSlice(10)
		assert.ErrorIs(t, err, SimulationNotRunErr)
	})

	t.Run("Path matrix starts at the spot price", func(t *testing.T) {
		model := NewMonteCarloModel(142.75, 150, 30, 0.04, 0.3, 500)
		require.NoError(t, model.SimulatePaths())

		slice, err := model.PathSlice(500)
		require.NoError(t, err)

		assert.Len(t, slice.Paths, 30)
		for _, price := range slice.Paths[0] {
			assert.Equal(t, 142.75, price)
		}

		for _, price := range slice.Paths[29] {
			assert.Greater(t, price, 0.0)
		}
	})

	t.Run("Path slice is clamped to the number of simulations", func(t *testing.T) {
		model := NewMonteCarloModel(100, 100, 10, 0.05, 0.2, 50)
		require.NoError(t, model.SimulatePaths())

		slice, err := model.PathSlice(200)
		require.NoError(t, err)
		assert.Len(t, slice.Paths[0], 50)
		assert.Equal(t, 100.0, slice.Strike)

		slice, err = model.PathSlice(5)
		require.NoError(t, err)
		assert.Len(t, slice.Paths[0], 5)
	})

	t.Run("Identically seeded models are reproducible", func(t *testing.T) {
		m1 := NewMonteCarloModelWithSeed(100, 105, 90, 0.03, 0.25, 2000, 40)
		m2 := NewMonteCarloModelWithSeed(100, 105, 90, 0.03, 0.25, 2000, 40)

		require.NoError(t, m1.SimulatePaths())
		require.NoError(t, m2.SimulatePaths())

		s1, err := m1.PathSlice(2000)
		require.NoError(t, err)

		s2, err := m2.PathSlice(2000)
		require.NoError(t, err)

		assert.Equal(t, s1.Paths, s2.Paths)

		p1, err := m1.CalcCallPrice()
		require.NoError(t, err)

		p2, err := m2.CalcCallPrice()
		require.NoError(t, err)

		assert.Equal(t, p1, p2)
	})

	t.Run("Regenerating overwrites the previous matrix", func(t *testing.T) {
		model := NewMonteCarloModelWithSeed(100, 100, 60, 0.05, 0.2, 100, 40)
		require.NoError(t, model.SimulatePaths())

		first, err := model.CalcCallPrice()
		require.NoError(t, err)

		model.seed = 41
		require.NoError(t, model.SimulatePaths())

		second, err := model.CalcCallPrice()
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Converges to the analytic price", func(t *testing.T) {
		model := NewMonteCarloModel(100, 100, 365, 0.05, 0.2, 50000)
		require.NoError(t, model.SimulatePaths())

		callPrice, err := model.CalcCallPrice()
		require.NoError(t, err)

		analytic, err := NewBlackScholesModel(100, 100, 365, 0.05, 0.2).CalcCallPrice()
		require.NoError(t, err)

		// standard error shrinks as 1/sqrt(N); 3% leaves several standard
		// errors of headroom at N=50000
		assert.InEpsilon(t, analytic, callPrice, 0.03)

		putPrice, err := model.CalcPutPrice()
		require.NoError(t, err)

		analyticPut, err := NewBlackScholesModel(100, 100, 365, 0.05, 0.2).CalcPutPrice()
		require.NoError(t, err)

		assert.InEpsilon(t, analyticPut, putPrice, 0.05)
	})

	t.Run("Call price is non-decreasing in spot", func(t *testing.T) {
		var prev float64
		for i, spot := range []float64{90.0, 100.0, 110.0} {
			model := NewMonteCarloModel(spot, 100, 180, 0.05, 0.2, 10000)
			require.NoError(t, model.SimulatePaths())

			price, err := model.CalcCallPrice()
			require.NoError(t, err)

			if i > 0 {
				assert.GreaterOrEqual(t, price, prev)
			}
			prev = price
		}
	})

	t.Run("Rejects a non-positive simulation count", func(t *testing.T) {
		model := NewMonteCarloModel(100, 100, 30, 0.05, 0.2, 0)
		assert.ErrorIs(t, model.SimulatePaths(), InvalidNumSimulationsErr)
	})
}
