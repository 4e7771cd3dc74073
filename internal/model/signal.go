package model

// BreakoutType indicates which breakout rule fired.
type BreakoutType string

const (
	BreakoutNone       BreakoutType = ""
	BreakoutResistance BreakoutType = "RESISTANCE_BREAKOUT"
	BreakoutMA         BreakoutType = "MA_BREAKOUT"
)

// BreakoutSignal is the result of breakout detection for the latest bar.
// At most one breakout type holds per evaluation; resistance outranks MA.
type BreakoutSignal struct {
	Signal   bool         `json:"signal"`
	Type     BreakoutType `json:"type,omitempty"`
	Strength float64      `json:"strength"`
}

// NoBreakout returns an empty breakout signal.
func NoBreakout() BreakoutSignal {
	return BreakoutSignal{}
}

// ResistanceBreakout builds a resistance breakout signal with the given
// fractional strength.
func ResistanceBreakout(strength float64) BreakoutSignal {
	return BreakoutSignal{Signal: true, Type: BreakoutResistance, Strength: strength}
}

// MABreakout builds a moving-average breakout signal.
func MABreakout(strength float64) BreakoutSignal {
	return BreakoutSignal{Signal: true, Type: BreakoutMA, Strength: strength}
}

// VolumeSignal is the result of volume spike detection. Ratio carries the
// peak volume/average ratio over the trailing window; when no spike fired
// it still carries the latest day's own ratio for observability.
type VolumeSignal struct {
	Signal bool    `json:"signal"`
	Ratio  float64 `json:"ratio"`
}

// NoVolumeSpike returns a quiet volume signal carrying the given ratio.
func NoVolumeSpike(ratio float64) VolumeSignal {
	return VolumeSignal{Ratio: ratio}
}

// VolumeSpike builds a volume spike signal with the peak ratio.
func VolumeSpike(ratio float64) VolumeSignal {
	return VolumeSignal{Signal: true, Ratio: ratio}
}

// CombinedSignals pairs the breakout and volume results for one symbol on
// the latest available bar date.
type CombinedSignals struct {
	Breakout BreakoutSignal `json:"breakout"`
	Volume   VolumeSignal   `json:"volume"`
}

// HasAnySignal reports whether either signal fired.
func (c CombinedSignals) HasAnySignal() bool {
	return c.Breakout.Signal || c.Volume.Signal
}

// SignalCount counts the active signals.
func (c CombinedSignals) SignalCount() int {
	n := 0
	if c.Breakout.Signal {
		n++
	}
	if c.Volume.Signal {
		n++
	}
	return n
}

// SignalQuality is the quality scorer's verdict for a classified result.
type SignalQuality struct {
	Quality    string   `json:"quality"` // excellent / good / fair / poor / unknown
	Confidence float64  `json:"confidence"`
	Factors    []string `json:"factors,omitempty"`
}

// UnknownQuality is returned when the scorer cannot evaluate.
func UnknownQuality() SignalQuality {
	return SignalQuality{Quality: "unknown"}
}
