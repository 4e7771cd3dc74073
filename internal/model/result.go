package model

import (
	"math"
	"sort"
	"time"
)

// StockPrice is the latest price snapshot for a screened symbol.
type StockPrice struct {
	Symbol       string    `json:"symbol"`
	CurrentPrice float64   `json:"current_price"`
	ChangePct    float64   `json:"change_pct"` // close-over-close, percent
	Volume       int64     `json:"volume"`
	AvgVolume    int64     `json:"avg_volume"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewStockPrice builds the snapshot from a series with computed indicators.
func NewStockPrice(series *BarSeries) StockPrice {
	latest := series.Latest()
	prev := series.Previous()

	changePct := 0.0
	if prev.Close > 0 {
		changePct = (latest.Close - prev.Close) / prev.Close * 100
	}

	avgVolume := 0.0
	if ind := series.Indicators; ind != nil && len(ind.VolumeMA20) > 0 {
		if v := ind.VolumeMA20[len(ind.VolumeMA20)-1]; !math.IsNaN(v) {
			avgVolume = v
		}
	}

	return StockPrice{
		Symbol:       series.Symbol,
		CurrentPrice: latest.Close,
		ChangePct:    changePct,
		Volume:       int64(latest.Volume),
		AvgVolume:    int64(avgVolume),
		Timestamp:    latest.Time,
	}
}

// ScreeningResult is one symbol's complete screening outcome. Immutable
// after construction and not persisted by the core.
type ScreeningResult struct {
	Price   StockPrice      `json:"price"`
	Signals CombinedSignals `json:"signals"`
	Quality *SignalQuality  `json:"quality,omitempty"` // set for ranked queries only
}

// Symbol returns the screened symbol.
func (r ScreeningResult) Symbol() string { return r.Price.Symbol }

// HasSignals reports whether any signal fired for this symbol.
func (r ScreeningResult) HasSignals() bool { return r.Signals.HasAnySignal() }

// FailedScreen records a symbol that could not be screened.
type FailedScreen struct {
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

// ScreeningResults collects the outcomes of a multi-symbol run. Failures
// are tracked separately from signal counts.
type ScreeningResults struct {
	Results []ScreeningResult `json:"results"`
	Failed  []FailedScreen    `json:"failed,omitempty"`
}

// TotalScreened is the number of successfully screened symbols.
func (rs *ScreeningResults) TotalScreened() int { return len(rs.Results) }

// FailedCount is the number of symbols skipped due to fetch or data errors.
func (rs *ScreeningResults) FailedCount() int { return len(rs.Failed) }

// WithSignals returns the results that have any signal.
func (rs *ScreeningResults) WithSignals() []ScreeningResult {
	var out []ScreeningResult
	for _, r := range rs.Results {
		if r.HasSignals() {
			out = append(out, r)
		}
	}
	return out
}

// WithBreakouts returns the results with a breakout signal.
func (rs *ScreeningResults) WithBreakouts() []ScreeningResult {
	var out []ScreeningResult
	for _, r := range rs.Results {
		if r.Signals.Breakout.Signal {
			out = append(out, r)
		}
	}
	return out
}

// WithVolumeSpikes returns the results with a volume spike signal.
func (rs *ScreeningResults) WithVolumeSpikes() []ScreeningResult {
	var out []ScreeningResult
	for _, r := range rs.Results {
		if r.Signals.Volume.Signal {
			out = append(out, r)
		}
	}
	return out
}

// SignalCount counts symbols with any signal.
func (rs *ScreeningResults) SignalCount() int { return len(rs.WithSignals()) }

// BreakoutCount counts symbols with a breakout signal.
func (rs *ScreeningResults) BreakoutCount() int { return len(rs.WithBreakouts()) }

// VolumeSpikeCount counts symbols with a volume spike.
func (rs *ScreeningResults) VolumeSpikeCount() int { return len(rs.WithVolumeSpikes()) }

// TopSignals returns up to limit results with signals, strongest first:
// by active signal count, then breakout strength, then volume ratio.
func (rs *ScreeningResults) TopSignals(limit int) []ScreeningResult {
	top := rs.WithSignals()
	sort.SliceStable(top, func(i, j int) bool {
		a, b := top[i].Signals, top[j].Signals
		if a.SignalCount() != b.SignalCount() {
			return a.SignalCount() > b.SignalCount()
		}
		if a.Breakout.Strength != b.Breakout.Strength {
			return a.Breakout.Strength > b.Breakout.Strength
		}
		return a.Volume.Ratio > b.Volume.Ratio
	})
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}
