package model

// IndicatorSet holds the rolling indicators computed from a BarSeries,
// one value per bar date. Entries before a window is full are NaN and
// must never be read as zero.
type IndicatorSet struct {
	SMA20        []float64 // 20-day simple moving average of close
	SMA50        []float64 // 50-day simple moving average of close
	Resistance20 []float64 // 20-day rolling max of high
	Support20    []float64 // 20-day rolling min of low
	VolumeMA20   []float64 // 20-day average volume
	Volatility20 []float64 // 20-day rolling stddev of close
}
