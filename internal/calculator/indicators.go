package calculator

import "StockScout/internal/model"

// Window sizes used across the screener.
const (
	ShortWindow      = 20 // SMA, resistance/support, volume MA, volatility
	LongWindow       = 50 // trend-confirmation SMA
	VolatilityWindow = 20
)

// Compute derives all rolling indicators from the bars, aligned one value
// per bar date. It never fails: with fewer bars than a window the affected
// entries simply stay NaN, and callers check for that explicitly.
func Compute(bars []model.Bar) *model.IndicatorSet {
	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
		volumes[i] = b.Volume
	}

	return &model.IndicatorSet{
		SMA20:        RollingMean(closes, ShortWindow),
		SMA50:        RollingMean(closes, LongWindow),
		Resistance20: RollingMax(highs, ShortWindow),
		Support20:    RollingMin(lows, ShortWindow),
		VolumeMA20:   RollingMean(volumes, ShortWindow),
		Volatility20: RollingStdDev(closes, VolatilityWindow),
	}
}

// Attach computes the indicators for a series and attaches them to it.
func Attach(series *model.BarSeries) *model.IndicatorSet {
	series.Indicators = Compute(series.Bars)
	return series.Indicators
}
