package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-pricing/src/models"
	"github.com/jiaming2012/option-pricing/src/optionpricing"
	"github.com/jiaming2012/option-pricing/src/utils"
)

type RunArgs struct {
	Method         string
	OptionType     string
	Spot           float64
	Strike         float64
	DaysToMaturity int
	RiskFreeRate   float64
	Volatility     float64
	NumSimulations int
	TimeSteps      int
	CsvOutFile     string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/price_option/main.go --spot 139.15 --strike 50 --days 363 --rate 0.0681 --vol 0.1384",
	Short: "Price a European option with the analytic, monte carlo and binomial engines",
	Run: func(cmd *cobra.Command, args []string) {
		method, err := cmd.Flags().GetString("method")
		if err != nil {
			log.Fatalf("error getting method: %v", err)
		}

		optionType, err := cmd.Flags().GetString("option-type")
		if err != nil {
			log.Fatalf("error getting option-type: %v", err)
		}

		spot, err := cmd.Flags().GetFloat64("spot")
		if err != nil {
			log.Fatalf("error getting spot: %v", err)
		}

		strike, err := cmd.Flags().GetFloat64("strike")
		if err != nil {
			log.Fatalf("error getting strike: %v", err)
		}

		days, err := cmd.Flags().GetInt("days")
		if err != nil {
			log.Fatalf("error getting days: %v", err)
		}

		rate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		vol, err := cmd.Flags().GetFloat64("vol")
		if err != nil {
			log.Fatalf("error getting vol: %v", err)
		}

		numSimulations, err := cmd.Flags().GetInt("num-simulations")
		if err != nil {
			log.Fatalf("error getting num-simulations: %v", err)
		}

		timeSteps, err := cmd.Flags().GetInt("time-steps")
		if err != nil {
			log.Fatalf("error getting time-steps: %v", err)
		}

		csvOutFile, err := cmd.Flags().GetString("csv-out")
		if err != nil {
			log.Fatalf("error getting csv-out: %v", err)
		}

		result, err := Run(RunArgs{
			Method:         method,
			OptionType:     optionType,
			Spot:           spot,
			Strike:         strike,
			DaysToMaturity: days,
			RiskFreeRate:   rate,
			Volatility:     vol,
			NumSimulations: numSimulations,
			TimeSteps:      timeSteps,
			CsvOutFile:     csvOutFile,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Print(result.String())
	},
}

func validateArgs(args RunArgs) error {
	if args.Spot <= 0 {
		return fmt.Errorf("spot price must be positive, found %v", args.Spot)
	}

	if args.Strike <= 0 {
		return fmt.Errorf("strike price must be positive, found %v", args.Strike)
	}

	if args.DaysToMaturity <= 0 {
		return fmt.Errorf("days to maturity must be positive, found %v", args.DaysToMaturity)
	}

	if args.Volatility <= 0 {
		return fmt.Errorf("volatility must be positive, found %v", args.Volatility)
	}

	return nil
}

func selectedMethods(method string) ([]optionpricing.PricingMethod, error) {
	if method == "all" {
		return []optionpricing.PricingMethod{
			optionpricing.PricingMethodBlackScholes,
			optionpricing.PricingMethodMonteCarlo,
			optionpricing.PricingMethodBinomial,
		}, nil
	}

	m := optionpricing.PricingMethod(method)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return []optionpricing.PricingMethod{m}, nil
}

func selectedOptionTypes(optionType string) ([]optionpricing.OptionType, error) {
	if optionType == "both" {
		return []optionpricing.OptionType{optionpricing.OptionTypeCall, optionpricing.OptionTypePut}, nil
	}

	t := optionpricing.OptionType(optionType)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return []optionpricing.OptionType{t}, nil
}

func buildModel(method optionpricing.PricingMethod, args RunArgs) (optionpricing.PricingModel, error) {
	switch method {
	case optionpricing.PricingMethodBlackScholes:
		return optionpricing.NewBlackScholesModel(args.Spot, args.Strike, float64(args.DaysToMaturity), args.RiskFreeRate, args.Volatility), nil

	case optionpricing.PricingMethodMonteCarlo:
		model := optionpricing.NewMonteCarloModel(args.Spot, args.Strike, args.DaysToMaturity, args.RiskFreeRate, args.Volatility, args.NumSimulations)
		if err := model.SimulatePaths(); err != nil {
			return nil, fmt.Errorf("buildModel: failed to simulate paths: %w", err)
		}

		return model, nil

	case optionpricing.PricingMethodBinomial:
		// the binomial engine takes maturity as raw days, by convention
		return optionpricing.NewBinomialModel(args.Spot, args.Strike, float64(args.DaysToMaturity), args.RiskFreeRate, args.Volatility, args.TimeSteps)

	default:
		return nil, fmt.Errorf("buildModel: unsupported pricing method: %s", method)
	}
}

func Run(args RunArgs) (models.PricedOptions, error) {
	if err := validateArgs(args); err != nil {
		return nil, fmt.Errorf("Run: invalid arguments: %w", err)
	}

	methods, err := selectedMethods(args.Method)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	optionTypes, err := selectedOptionTypes(args.OptionType)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	var rows models.PricedOptions
	for _, method := range methods {
		model, err := buildModel(method, args)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}

		for _, optionType := range optionTypes {
			price, err := optionpricing.CalcPrice(model, optionType)
			if err != nil {
				return nil, fmt.Errorf("Run: failed to calculate %s %s price: %w", method, optionType, err)
			}

			rows = append(rows, &models.PricedOptionDTO{
				Method:         string(method),
				OptionType:     string(optionType),
				Spot:           args.Spot,
				Strike:         args.Strike,
				DaysToMaturity: args.DaysToMaturity,
				RiskFreeRate:   args.RiskFreeRate,
				Volatility:     args.Volatility,
				Price:          price,
			})
		}
	}

	if args.CsvOutFile != "" {
		if err := utils.ExportPricesToCsv(rows, args.CsvOutFile); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	return rows, nil
}

func main() {
	runCmd.Flags().String("method", "all", "Pricing method: black_scholes, monte_carlo, binomial or all")
	runCmd.Flags().String("option-type", "both", "Option type: call, put or both")
	runCmd.Flags().Float64("spot", 0, "Current price of the underlying asset")
	runCmd.Flags().Float64("strike", 0, "Strike price of the option contract")
	runCmd.Flags().Int("days", 0, "Days until the exercise date")
	runCmd.Flags().Float64("rate", 0, "Annualized risk-free rate")
	runCmd.Flags().Float64("vol", 0, "Annualized volatility of the underlying asset")
	runCmd.Flags().Int("num-simulations", 10000, "Number of monte carlo simulations")
	runCmd.Flags().Int("time-steps", 10000, "Number of binomial tree steps")
	runCmd.Flags().String("csv-out", "", "Optional csv file to export the priced rows to")

	runCmd.MarkFlagRequired("spot")
	runCmd.MarkFlagRequired("strike")
	runCmd.MarkFlagRequired("days")
	runCmd.MarkFlagRequired("vol")

	runCmd.Execute()
}
