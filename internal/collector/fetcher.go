package collector

import "StockScout/internal/model"

// Fetcher defines the interface for fetching daily bars from a market data
// source. Period is a lookback window name: 1mo, 3mo, 6mo, 1y, 2y or 5y.
type Fetcher interface {
	FetchDailyBars(symbol, period string) ([]model.Bar, error)
	Name() string
}

// DefaultPeriod is the lookback used when none is configured.
const DefaultPeriod = "3mo"

// periodDays maps a period name to an approximate trading-day count.
var periodDays = map[string]int{
	"1mo": 21,
	"3mo": 63,
	"6mo": 126,
	"1y":  252,
	"2y":  504,
	"5y":  1260,
}

// ValidPeriod reports whether the period name is supported.
func ValidPeriod(period string) bool {
	_, ok := periodDays[period]
	return ok
}

// PeriodDays returns the approximate trading-day count for a period,
// falling back to the default period when unknown.
func PeriodDays(period string) int {
	if d, ok := periodDays[period]; ok {
		return d
	}
	return periodDays[DefaultPeriod]
}
