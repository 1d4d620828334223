package priceapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-pricing/src/models"
)

func setupTestRouter() *mux.Router {
	testConfig := &models.PricingConfigYAML{
		DefaultNumSimulations: 1000,
		DefaultTimeSteps:      1000,
		MaxPathSliceColumns:   100,
	}

	router := mux.NewRouter()
	SetupHandler(router.PathPrefix("/options").Subrouter(), testConfig)
	return router
}

func TestHandlePrice(t *testing.T) {
	router := setupTestRouter()

	t.Run("Black Scholes call", func(t *testing.T) {
		url := "/options/price?method=black_scholes&optionType=call&spot=100&strike=100&daysToMaturity=365&riskFreeRate=0.05&volatility=0.2"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)

		var resp PriceOptionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.InDelta(t, 10.450583572186, resp.Price, 1e-6)
	})

	t.Run("Binomial put", func(t *testing.T) {
		url := "/options/price?method=binomial&optionType=put&spot=100&strike=110&daysToMaturity=365&riskFreeRate=0.05&volatility=0.2&timeSteps=500"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)

		var resp PriceOptionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Greater(t, resp.Price, 0.0)
	})

	t.Run("Monte Carlo call uses the default simulation count", func(t *testing.T) {
		url := "/options/price?method=monte_carlo&optionType=call&spot=100&strike=100&daysToMaturity=30&riskFreeRate=0.05&volatility=0.2"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)

		var resp PriceOptionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Greater(t, resp.Price, 0.0)
	})

	t.Run("Unrecognized option type is a client error", func(t *testing.T) {
		url := "/options/price?method=black_scholes&optionType=straddle&spot=100&strike=100&daysToMaturity=365&riskFreeRate=0.05&volatility=0.2"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code)
	})

	t.Run("Non-positive volatility is rejected at the boundary", func(t *testing.T) {
		url := "/options/price?method=black_scholes&optionType=call&spot=100&strike=100&daysToMaturity=365&riskFreeRate=0.05&volatility=0"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code)
	})
}

func TestHandleSimulations(t *testing.T) {
	router := setupTestRouter()

	createSimulation := func(t *testing.T) CreateSimulationResponse {
		body, err := json.Marshal(CreateSimulationRequest{
			Spot:           142.75,
			Strike:         150,
			DaysToMaturity: 30,
			RiskFreeRate:   0.04,
			Volatility:     0.3,
			NumSimulations: 500,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/options/simulations", bytes.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)

		var resp CreateSimulationResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		return resp
	}

	t.Run("Create simulation returns both prices", func(t *testing.T) {
		resp := createSimulation(t)

		assert.NotEmpty(t, resp.SimulationID)
		assert.GreaterOrEqual(t, resp.CallPrice, 0.0)
		assert.Greater(t, resp.PutPrice, 0.0)
	})

	t.Run("Path slice starts at the spot price and clamps count", func(t *testing.T) {
		created := createSimulation(t)

		url := fmt.Sprintf("/options/simulations/%s/paths?count=5000", created.SimulationID)
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)

		var resp PathSliceResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.Equal(t, 150.0, resp.Strike)
		assert.Equal(t, 30, resp.NumSteps)
		require.Len(t, resp.Paths, 30)
		assert.Len(t, resp.Paths[0], 100) // clamped to MaxPathSliceColumns

		for _, price := range resp.Paths[0] {
			assert.Equal(t, 142.75, price)
		}
	})

	t.Run("Unknown simulation id returns not found", func(t *testing.T) {
		url := "/options/simulations/0b310ba0-0a70-4cf5-907d-52a18b2d164c/paths"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, 404, w.Code)
	})

	t.Run("Invalid simulation parameters are rejected", func(t *testing.T) {
		body, err := json.Marshal(CreateSimulationRequest{
			Spot:           -1,
			Strike:         150,
			DaysToMaturity: 30,
			Volatility:     0.3,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/options/simulations", bytes.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code)
	})
}
