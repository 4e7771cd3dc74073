package screener

import (
	"errors"
	"fmt"
	"log"
	"time"

	"StockScout/internal/calculator"
	"StockScout/internal/collector"
	"StockScout/internal/model"
	"StockScout/internal/strategy"
)

// Error kinds surfaced by a single-symbol screen. Both are recorded as
// skips by the batch, never propagated into indicator or signal logic.
var (
	ErrDataUnavailable     = errors.New("market data unavailable")
	ErrInsufficientHistory = errors.New("insufficient bar history")
)

// MinBars is the minimum series length required to screen a symbol: a full
// 20-day window plus the previous bar a breakout comparison needs.
const MinBars = 21

// Screener drives the per-symbol pipeline (fetch, indicators, signals,
// quality) and aggregates results across a watchlist. Symbols are screened
// sequentially; no state is shared between them.
type Screener struct {
	Fetcher collector.Fetcher
	Config  strategy.Config
	Period  string
}

// New creates a Screener. An empty period falls back to the default.
func New(fetcher collector.Fetcher, cfg strategy.Config, period string) *Screener {
	if period == "" {
		period = collector.DefaultPeriod
	}
	return &Screener{Fetcher: fetcher, Config: cfg, Period: period}
}

// Screen runs the pipeline for one symbol.
func (s *Screener) Screen(symbol string) (*model.ScreeningResult, error) {
	return s.screen(symbol, false)
}

func (s *Screener) screen(symbol string, withQuality bool) (*model.ScreeningResult, error) {
	bars, err := s.Fetcher.FetchDailyBars(symbol, s.Period)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, symbol, err)
	}
	if len(bars) < MinBars {
		return nil, fmt.Errorf("%w: %s has %d bars, need %d", ErrInsufficientHistory, symbol, len(bars), MinBars)
	}

	series := &model.BarSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
	calculator.Attach(series)

	signals := strategy.Detect(s.Config, series)

	result := &model.ScreeningResult{
		Price:   model.NewStockPrice(series),
		Signals: signals,
	}
	if withQuality {
		quality := strategy.AnalyzeQuality(signals, series)
		result.Quality = &quality
	}
	return result, nil
}

// ScreenAll screens every symbol in the list, continuing past individual
// failures. Failed symbols are tallied separately from signal counts.
func (s *Screener) ScreenAll(symbols []string) *model.ScreeningResults {
	return s.screenAll(symbols, false)
}

func (s *Screener) screenAll(symbols []string, withQuality bool) *model.ScreeningResults {
	log.Printf("[INFO] screening %d symbols (period=%s)", len(symbols), s.Period)
	results := &model.ScreeningResults{}

	for _, symbol := range symbols {
		result, err := s.screen(symbol, withQuality)
		if err != nil {
			log.Printf("[WARN] skipping %s: %v", symbol, err)
			results.Failed = append(results.Failed, model.FailedScreen{
				Symbol: symbol,
				Reason: err.Error(),
			})
			continue
		}
		results.Results = append(results.Results, *result)
	}

	log.Printf("[INFO] screening completed: %d successful, %d failed",
		results.TotalScreened(), results.FailedCount())
	return results
}

// SignalsOnly screens the list and keeps only symbols with an active
// signal. Failures stay visible in the returned collection.
func (s *Screener) SignalsOnly(symbols []string) *model.ScreeningResults {
	all := s.ScreenAll(symbols)
	return &model.ScreeningResults{
		Results: all.WithSignals(),
		Failed:  all.Failed,
	}
}

// TopOpportunities returns up to limit results ranked by signal strength,
// each with its quality analysis attached. Quality is scored inline while
// the fetched series is still in hand, so every symbol is fetched once.
func (s *Screener) TopOpportunities(symbols []string, limit int) []model.ScreeningResult {
	all := s.screenAll(symbols, true)
	top := all.TopSignals(limit)
	log.Printf("[INFO] identified %d top opportunities", len(top))
	return top
}

// MarketAnalysis summarizes overall market conditions from a screening run.
type MarketAnalysis struct {
	Condition        string  `json:"condition"`
	SignalPct        float64 `json:"signal_percentage"`
	BreakoutPct      float64 `json:"breakout_percentage"`
	VolumeSpikePct   float64 `json:"volume_spike_percentage"`
	TotalScreened    int     `json:"total_screened"`
	WithSignals      int     `json:"stocks_with_signals"`
	BreakoutCount    int     `json:"breakout_stocks"`
	VolumeSpikeCount int     `json:"volume_spike_stocks"`
}

// AnalyzeMarket screens the list and maps the share of symbols with
// signals onto a coarse market condition.
func (s *Screener) AnalyzeMarket(symbols []string) MarketAnalysis {
	results := s.ScreenAll(symbols)
	total := results.TotalScreened()
	if total == 0 {
		return MarketAnalysis{Condition: "unknown"}
	}

	analysis := MarketAnalysis{
		SignalPct:        float64(results.SignalCount()) / float64(total) * 100,
		BreakoutPct:      float64(results.BreakoutCount()) / float64(total) * 100,
		VolumeSpikePct:   float64(results.VolumeSpikeCount()) / float64(total) * 100,
		TotalScreened:    total,
		WithSignals:      results.SignalCount(),
		BreakoutCount:    results.BreakoutCount(),
		VolumeSpikeCount: results.VolumeSpikeCount(),
	}

	switch {
	case analysis.SignalPct >= 30:
		analysis.Condition = "very_bullish"
	case analysis.SignalPct >= 20:
		analysis.Condition = "bullish"
	case analysis.SignalPct >= 10:
		analysis.Condition = "neutral_positive"
	case analysis.SignalPct >= 5:
		analysis.Condition = "neutral"
	default:
		analysis.Condition = "bearish"
	}

	log.Printf("[INFO] market analysis: %s (%.1f%% with signals)", analysis.Condition, analysis.SignalPct)
	return analysis
}

// HealthStatus reports per-component health for the --health-check mode.
type HealthStatus struct {
	Overall    string `json:"overall"`
	DataSource string `json:"data_source"`
	Pipeline   string `json:"pipeline"`
}

// HealthCheck probes the data source with a well-known symbol and runs the
// indicator/signal pipeline over a synthetic series.
func (s *Screener) HealthCheck() HealthStatus {
	status := HealthStatus{Overall: "healthy", DataSource: "healthy", Pipeline: "healthy"}

	if _, err := s.Fetcher.FetchDailyBars("AAPL", "1mo"); err != nil {
		log.Printf("[WARN] health check: data source probe failed: %v", err)
		status.DataSource = "unhealthy"
		status.Overall = "degraded"
	}

	series := &model.BarSeries{Symbol: "HEALTHCHECK", Bars: collector.GenerateBars(100, 60)}
	calculator.Attach(series)
	signals := strategy.Detect(s.Config, series)
	if q := strategy.AnalyzeQuality(signals, series); q.Quality == "unknown" {
		status.Pipeline = "unhealthy"
		status.Overall = "degraded"
	}

	return status
}
