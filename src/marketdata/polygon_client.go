package marketdata

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	polygonmodels "github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-pricing/src/models"
)

// PolygonDataFetcher pulls historical daily bars, the inputs a pricing call
// needs when the caller has no spot price or volatility estimate at hand.
type PolygonDataFetcher struct {
	Client *polygon.Client
}

func NewPolygonDataFetcher(apiKey string) *PolygonDataFetcher {
	return &PolygonDataFetcher{
		Client: polygon.New(apiKey),
	}
}

// FetchDailyCandles returns the daily aggregate bars for symbol between
// fromDate and toDate, in ascending timestamp order.
func (f *PolygonDataFetcher) FetchDailyCandles(ctx context.Context, symbol string, fromDate time.Time, toDate time.Time) (models.Candles, error) {
	log.Debugf("fetching polygon daily bars for symbol %s", symbol)

	params := polygonmodels.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   polygonmodels.Day,
		From:       polygonmodels.Millis(fromDate),
		To:         polygonmodels.Millis(toDate),
	}.WithOrder(polygonmodels.Asc).WithAdjusted(true)

	iter := f.Client.ListAggs(ctx, params)

	var candles models.Candles
	for iter.Next() {
		item := iter.Item()

		candles = append(candles, &models.Candle{
			Timestamp: time.Time(item.Timestamp),
			Open:      item.Open,
			High:      item.High,
			Low:       item.Low,
			Close:     item.Close,
			Volume:    item.Volume,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("FetchDailyCandles: failed to fetch %s aggregates: %w", symbol, err)
	}

	if len(candles) == 0 {
		return nil, fmt.Errorf("FetchDailyCandles: no results found for %s", symbol)
	}

	return candles, nil
}
