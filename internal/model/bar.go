package model

import "time"

// Bar represents a single daily OHLCV candlestick.
type Bar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// BarSeries holds the chronological daily bars for one symbol over the
// requested lookback period. Indicators is attached by the calculator and
// recomputed on every run.
type BarSeries struct {
	Symbol     string
	Bars       []Bar
	Indicators *IndicatorSet
	FetchedAt  time.Time
}

// Len returns the number of bars in the series.
func (s *BarSeries) Len() int { return len(s.Bars) }

// Latest returns the most recent bar. Callers must check Len() > 0 first.
func (s *BarSeries) Latest() Bar { return s.Bars[len(s.Bars)-1] }

// Previous returns the bar before the most recent one, or the latest bar
// when only one exists.
func (s *BarSeries) Previous() Bar {
	if len(s.Bars) > 1 {
		return s.Bars[len(s.Bars)-2]
	}
	return s.Bars[len(s.Bars)-1]
}
