package strategy

import (
	"log"
	"math"

	"StockScout/internal/model"
)

// Quality label thresholds over the additive factor score.
const (
	qualityExcellent = 0.8
	qualityGood      = 0.6
	qualityFair      = 0.4
)

// AnalyzeQuality assigns a coarse quality label and [0,1] confidence to a
// classified result, based on the indicator history behind it. It never
// fails: an empty series or an internal fault yields "unknown" with zero
// confidence.
func AnalyzeQuality(signals model.CombinedSignals, series *model.BarSeries) (q model.SignalQuality) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] quality analysis fault for %s: %v", series.Symbol, r)
			q = model.UnknownQuality()
		}
	}()

	if series.Len() == 0 || series.Indicators == nil {
		return model.UnknownQuality()
	}

	bars, ind := series.Bars, series.Indicators
	i := len(bars) - 1

	score := 0.0
	var factors []string

	// Volume confirmation.
	switch ratio := volumeRatio(bars, ind, i); {
	case ratio >= 3.0:
		score += 0.25
		factors = append(factors, "strong_volume")
	case ratio >= 1.5:
		score += 0.15
		factors = append(factors, "good_volume")
	}

	// Trend confirmation.
	if ind.SMA20[i] > ind.SMA50[i] {
		score += 0.15
		factors = append(factors, "uptrend")
	}

	// Volatility check: calm price action relative to the average price.
	if avg := ind.SMA20[i]; avg > 0 {
		if vol := ind.Volatility20[i]; !math.IsNaN(vol) && vol/avg < 0.03 {
			score += 0.1
			factors = append(factors, "low_volatility")
		}
	}

	// Signal strength.
	if signals.Breakout.Signal && signals.Breakout.Strength > 0.03 {
		score += 0.2
		factors = append(factors, "strong_breakout")
	}

	return model.SignalQuality{
		Quality:    qualityLabel(score),
		Confidence: score,
		Factors:    factors,
	}
}

func qualityLabel(score float64) string {
	switch {
	case score >= qualityExcellent:
		return "excellent"
	case score >= qualityGood:
		return "good"
	case score >= qualityFair:
		return "fair"
	default:
		return "poor"
	}
}
