package strategy

import (
	"log"
	"math"

	"StockScout/internal/model"
)

// Default thresholds, overridable from the CLI and config.
const (
	DefaultVolumeSpikeThreshold = 2.0  // volume vs 20-day average
	DefaultBreakoutThreshold    = 0.02 // fractional margin above resistance/SMA

	volumeConfirmRatio = 1.2 // volume confirmation for resistance breakouts
	signalLookbackDays = 5   // trailing window for breakout/volume scans
)

// Config holds the two tunable classifier thresholds. It is a plain value;
// detection keeps no state between calls.
type Config struct {
	VolumeSpikeThreshold float64
	BreakoutThreshold    float64
}

// DefaultConfig returns the documented default thresholds.
func DefaultConfig() Config {
	return Config{
		VolumeSpikeThreshold: DefaultVolumeSpikeThreshold,
		BreakoutThreshold:    DefaultBreakoutThreshold,
	}
}

// Detect evaluates the breakout and volume-spike rules against the latest
// bar of the series. It never panics out: any fault inside detection
// degrades to a no-signal result so a multi-symbol run can continue.
func Detect(cfg Config, series *model.BarSeries) (signals model.CombinedSignals) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] signal detection fault for %s: %v", series.Symbol, r)
			signals = model.CombinedSignals{
				Breakout: model.NoBreakout(),
				Volume:   model.NoVolumeSpike(0),
			}
		}
	}()

	if series.Len() < 2 || series.Indicators == nil {
		return model.CombinedSignals{
			Breakout: model.NoBreakout(),
			Volume:   model.NoVolumeSpike(0),
		}
	}

	return model.CombinedSignals{
		Breakout: detectBreakout(cfg, series),
		Volume:   detectVolumeSpike(cfg, series),
	}
}

// detectBreakout checks resistance breakout first; the MA cross is only
// reported when no resistance breakout fired.
func detectBreakout(cfg Config, series *model.BarSeries) model.BreakoutSignal {
	if ok, strength := resistanceBreakout(cfg, series); ok {
		return model.ResistanceBreakout(strength)
	}
	if ok, strength := maBreakout(series); ok {
		return model.MABreakout(strength)
	}
	return model.NoBreakout()
}

// resistanceBreakout scans the trailing window, newest bar first, for a day
// whose close exceeded the resistance in place before it by the configured
// margin. The resistance for day i is the 20-day rolling max as of day i-1,
// so the candidate bar's own high never masks its breakout. Volume must
// confirm on the breakout day or the day after.
func resistanceBreakout(cfg Config, series *model.BarSeries) (bool, float64) {
	bars, ind := series.Bars, series.Indicators
	n := len(bars)

	lookback := signalLookbackDays
	if n-1 < lookback {
		lookback = n - 1 // each candidate needs a prior bar for its resistance
	}

	for k := 0; k < lookback; k++ {
		i := n - 1 - k
		resistance := ind.Resistance20[i-1]
		if math.IsNaN(resistance) || resistance <= 0 {
			continue
		}
		if bars[i].Close <= resistance*(1+cfg.BreakoutThreshold) {
			continue
		}
		if !volumeConfirmed(bars, ind, i) {
			continue
		}
		strength := (bars[i].Close - resistance) / resistance
		return true, math.Max(0, strength)
	}
	return false, 0
}

// volumeConfirmed reports whether day i, or the following day if one
// exists, traded at least 1.2x its 20-day average volume.
func volumeConfirmed(bars []model.Bar, ind *model.IndicatorSet, i int) bool {
	for _, j := range []int{i, i + 1} {
		if j >= len(bars) {
			break
		}
		avg := ind.VolumeMA20[j]
		if !math.IsNaN(avg) && bars[j].Volume >= avg*volumeConfirmRatio {
			return true
		}
	}
	return false
}

// maBreakout requires a fresh cross above the 20-day SMA (previous close at
// or below its SMA) with the 20-day above the 50-day as uptrend
// confirmation. An established trend does not re-trigger.
func maBreakout(series *model.BarSeries) (bool, float64) {
	bars, ind := series.Bars, series.Indicators
	i := len(bars) - 1

	sma20, sma50 := ind.SMA20[i], ind.SMA50[i]
	prevSMA20 := ind.SMA20[i-1]

	// NaN indicator values fail every comparison, which is the intended
	// insufficient-history behavior.
	crossed := bars[i].Close > sma20 && bars[i-1].Close <= prevSMA20
	uptrend := sma20 > sma50

	if !crossed || !uptrend {
		return false, 0
	}
	strength := (bars[i].Close - sma20) / sma20
	return true, math.Max(0, strength)
}

// detectVolumeSpike takes the peak volume/average ratio over the trailing
// window, not just the latest day, so a spike a few days back still
// surfaces.
func detectVolumeSpike(cfg Config, series *model.BarSeries) model.VolumeSignal {
	bars, ind := series.Bars, series.Indicators
	n := len(bars)

	lookback := signalLookbackDays
	if n < lookback {
		lookback = n
	}

	maxRatio := 0.0
	for k := 0; k < lookback; k++ {
		i := n - 1 - k
		if r := volumeRatio(bars, ind, i); r > maxRatio {
			maxRatio = r
		}
	}

	if maxRatio >= cfg.VolumeSpikeThreshold {
		return model.VolumeSpike(maxRatio)
	}
	// Quiet days still report the latest day's own ratio for observability.
	return model.NoVolumeSpike(volumeRatio(bars, ind, n-1))
}

// volumeRatio is volume over the 20-day average for day i, or 0 when the
// average is undefined or zero. Never divides by zero.
func volumeRatio(bars []model.Bar, ind *model.IndicatorSet, i int) float64 {
	avg := ind.VolumeMA20[i]
	if math.IsNaN(avg) || avg <= 0 {
		return 0
	}
	return bars[i].Volume / avg
}
