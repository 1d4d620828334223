package priceapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-pricing/src/models"
	"github.com/jiaming2012/option-pricing/src/optionpricing"
)

var (
	config      *models.PricingConfigYAML
	simulations = map[uuid.UUID]*optionpricing.MonteCarloModel{}
	simMutex    sync.RWMutex
	decoder     = schema.NewDecoder()
)

type errorResponse struct {
	Type string `json:"type"`
	Msg  string `json:"message"`
}

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("setResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(errType string, statusCode int, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := &errorResponse{
		Type: errType,
		Msg:  err.Error(),
	}

	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		log.Errorf("setErrorResponse: encode: %v", encodeErr)
	}
}

func buildModel(req *PriceOptionRequest) (optionpricing.PricingModel, error) {
	switch req.Method {
	case optionpricing.PricingMethodBlackScholes:
		return optionpricing.NewBlackScholesModel(req.Spot, req.Strike, float64(req.DaysToMaturity), req.RiskFreeRate, req.Volatility), nil

	case optionpricing.PricingMethodMonteCarlo:
		numSimulations := req.NumSimulations
		if numSimulations <= 0 {
			numSimulations = config.DefaultNumSimulations
		}

		model := optionpricing.NewMonteCarloModel(req.Spot, req.Strike, req.DaysToMaturity, req.RiskFreeRate, req.Volatility, numSimulations)
		if err := model.SimulatePaths(); err != nil {
			return nil, fmt.Errorf("buildModel: failed to simulate paths: %w", err)
		}

		return model, nil

	case optionpricing.PricingMethodBinomial:
		timeSteps := req.TimeSteps
		if timeSteps <= 0 {
			timeSteps = config.DefaultTimeSteps
		}

		// the binomial engine takes maturity as raw days, by convention
		return optionpricing.NewBinomialModel(req.Spot, req.Strike, float64(req.DaysToMaturity), req.RiskFreeRate, req.Volatility, timeSteps)

	default:
		return nil, fmt.Errorf("buildModel: unsupported pricing method: %s", req.Method)
	}
}

func handlePrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		setErrorResponse("handlePrice: method not allowed", 405, fmt.Errorf("expected GET, found %s", r.Method), w)
		return
	}

	var req PriceOptionRequest
	if err := decoder.Decode(&req, r.URL.Query()); err != nil {
		setErrorResponse("handlePrice: failed to decode query parameters", 400, err, w)
		return
	}

	if err := req.Validate(); err != nil {
		setErrorResponse("handlePrice: invalid request", 400, err, w)
		return
	}

	model, err := buildModel(&req)
	if err != nil {
		setErrorResponse("handlePrice: failed to build pricing model", 400, err, w)
		return
	}

	price, err := optionpricing.CalcPrice(model, req.OptionType)
	if err != nil {
		setErrorResponse("handlePrice: failed to calculate price", 400, err, w)
		return
	}

	log.Infof("priced %s %s: spot=%v strike=%v days=%d price=%v", req.Method, req.OptionType, req.Spot, req.Strike, req.DaysToMaturity, price)

	response := PriceOptionResponse{
		Method:     req.Method,
		OptionType: req.OptionType,
		Price:      price,
	}

	if err := setResponse(response, w); err != nil {
		setErrorResponse("handlePrice: failed to set response", 500, err, w)
		return
	}
}

func handleCreateSimulation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		setErrorResponse("handleCreateSimulation: method not allowed", 405, fmt.Errorf("expected POST, found %s", r.Method), w)
		return
	}

	var req CreateSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		setErrorResponse("handleCreateSimulation: failed to decode request body", 400, err, w)
		return
	}

	if err := req.Validate(); err != nil {
		setErrorResponse("handleCreateSimulation: invalid request", 400, err, w)
		return
	}

	numSimulations := req.NumSimulations
	if numSimulations <= 0 {
		numSimulations = config.DefaultNumSimulations
	}

	model := optionpricing.NewMonteCarloModel(req.Spot, req.Strike, req.DaysToMaturity, req.RiskFreeRate, req.Volatility, numSimulations)
	if err := model.SimulatePaths(); err != nil {
		setErrorResponse("handleCreateSimulation: failed to simulate paths", 400, err, w)
		return
	}

	callPrice, err := model.CalcCallPrice()
	if err != nil {
		setErrorResponse("handleCreateSimulation: failed to calculate call price", 500, err, w)
		return
	}

	putPrice, err := model.CalcPutPrice()
	if err != nil {
		setErrorResponse("handleCreateSimulation: failed to calculate put price", 500, err, w)
		return
	}

	id := uuid.New()

	simMutex.Lock()
	simulations[id] = model
	simMutex.Unlock()

	log.Infof("created simulation %s: %d paths over %d days", id, numSimulations, req.DaysToMaturity)

	response := CreateSimulationResponse{
		SimulationID: id.String(),
		CallPrice:    callPrice,
		PutPrice:     putPrice,
	}

	if err := setResponse(response, w); err != nil {
		setErrorResponse("handleCreateSimulation: failed to set response", 500, err, w)
		return
	}
}

func handlePathSlice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	simulationID, err := uuid.Parse(vars["id"])
	if err != nil {
		setErrorResponse("handlePathSlice: failed to parse simulation id", 400, err, w)
		return
	}

	simMutex.RLock()
	model, found := simulations[simulationID]
	simMutex.RUnlock()

	if !found {
		setErrorResponse("handlePathSlice: simulation not found", 404, fmt.Errorf("no simulation with id %s", simulationID), w)
		return
	}

	count := config.MaxPathSliceColumns
	if countParam := r.URL.Query().Get("count"); countParam != "" {
		count, err = strconv.Atoi(countParam)
		if err != nil {
			setErrorResponse("handlePathSlice: failed to parse count", 400, err, w)
			return
		}
	}

	if count > config.MaxPathSliceColumns {
		count = config.MaxPathSliceColumns
	}

	slice, err := model.PathSlice(count)
	if err != nil {
		setErrorResponse("handlePathSlice: failed to slice paths", 500, err, w)
		return
	}

	response := PathSliceResponse{
		Strike:   slice.Strike,
		NumSteps: slice.NumSteps,
		Paths:    slice.Paths,
	}

	if err := setResponse(response, w); err != nil {
		setErrorResponse("handlePathSlice: failed to set response", 500, err, w)
		return
	}
}

func SetupHandler(router *mux.Router, pricingConfig *models.PricingConfigYAML) {
	config = pricingConfig

	decoder.IgnoreUnknownKeys(true)

	router.HandleFunc("/price", handlePrice)
	router.HandleFunc("/simulations", handleCreateSimulation)
	router.HandleFunc("/simulations/{id}/paths", handlePathSlice)
}
