package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-pricing/src/marketdata"
	"github.com/jiaming2012/option-pricing/src/utils"
)

type RunArgs struct {
	GoEnv        string
	Ticker       string
	LookbackDays int
}

type RunResult struct {
	Ticker               string
	Spot                 float64
	AnnualizedVolatility float64
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/fetch_market_data/main.go --ticker AAPL",
	Short: "Fetch the spot price and annualized volatility used as pricing inputs",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		ticker, err := cmd.Flags().GetString("ticker")
		if err != nil {
			log.Fatalf("error getting ticker: %v", err)
		}

		lookbackDays, err := cmd.Flags().GetInt("lookback-days")
		if err != nil {
			log.Fatalf("error getting lookback-days: %v", err)
		}

		result, err := Run(RunArgs{
			GoEnv:        goEnv,
			Ticker:       ticker,
			LookbackDays: lookbackDays,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Printf("%s: spot=%.2f annualized_volatility=%.4f\n", result.Ticker, result.Spot, result.AnnualizedVolatility)
	},
}

func Run(args RunArgs) (RunResult, error) {
	projectsDir := os.Getenv("PROJECTS_DIR")
	if projectsDir == "" {
		log.Fatalf("missing PROJECTS_DIR environment variable")
	}

	if err := utils.InitEnvironmentVariables(projectsDir, args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	polygonApiKey, err := utils.GetEnv("POLYGON_API_KEY")
	if err != nil {
		log.Fatalf("$POLYGON_API_KEY not set: %v", err)
	}

	fetcher := marketdata.NewPolygonDataFetcher(polygonApiKey)

	toDate := time.Now()
	fromDate := toDate.AddDate(0, 0, -args.LookbackDays)

	candles, err := fetcher.FetchDailyCandles(context.Background(), args.Ticker, fromDate, toDate)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to fetch candles: %w", err)
	}

	spot, found := candles.LastClose()
	if !found {
		return RunResult{}, fmt.Errorf("Run: no close prices found for %s", args.Ticker)
	}

	vol, err := marketdata.AnnualizedVolatility(candles)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to estimate volatility: %w", err)
	}

	return RunResult{
		Ticker:               args.Ticker,
		Spot:                 spot,
		AnnualizedVolatility: vol,
	}, nil
}

func main() {
	runCmd.Flags().String("go-env", "development", "The go environment to run the command in")
	runCmd.Flags().String("ticker", "", "Ticker symbol to fetch")
	runCmd.Flags().Int("lookback-days", 365, "Number of calendar days of history to fetch")

	runCmd.MarkFlagRequired("ticker")

	runCmd.Execute()
}
