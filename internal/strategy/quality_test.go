package strategy

import (
	"testing"

	"StockScout/internal/calculator"
	"StockScout/internal/model"
)

func analyze(t *testing.T, s *model.BarSeries) model.SignalQuality {
	t.Helper()
	calculator.Attach(s)
	return AnalyzeQuality(Detect(DefaultConfig(), s), s)
}

func TestAnalyzeQuality_EmptySeries(t *testing.T) {
	q := AnalyzeQuality(model.CombinedSignals{}, &model.BarSeries{Symbol: "EMPTY"})
	if q.Quality != "unknown" || q.Confidence != 0 {
		t.Errorf("expected unknown/0 on empty series, got %+v", q)
	}
}

func TestAnalyzeQuality_AllFactors(t *testing.T) {
	// Calm flat series, then a 3.5% breakout on 3.1x volume: every factor
	// lines up.
	s := flatSeries(60, 100, 1000000)
	setBar(s, 59, 103.5, 3500000)
	q := analyze(t, s)

	if q.Quality != "good" {
		t.Fatalf("expected good quality, got %+v", q)
	}
	want := []string{"strong_volume", "uptrend", "low_volatility", "strong_breakout"}
	if len(q.Factors) != len(want) {
		t.Fatalf("expected factors %v, got %v", want, q.Factors)
	}
	for i, f := range want {
		if q.Factors[i] != f {
			t.Errorf("factor %d: expected %q, got %q", i, f, q.Factors[i])
		}
	}
}

func TestAnalyzeQuality_WeakerSignalScoresLower(t *testing.T) {
	strong := flatSeries(60, 100, 1000000)
	setBar(strong, 59, 103.5, 3500000)

	// Same shape, smaller move on less volume.
	weak := flatSeries(60, 100, 1000000)
	setBar(weak, 59, 102.5, 2000000)

	qs := analyze(t, strong)
	qw := analyze(t, weak)

	if qw.Confidence >= qs.Confidence {
		t.Errorf("expected weaker setup to score lower: weak %.2f >= strong %.2f", qw.Confidence, qs.Confidence)
	}
	if qw.Quality != "fair" {
		t.Errorf("expected fair quality for weak setup, got %+v", qw)
	}
}

func TestAnalyzeQuality_FlatSeriesIsPoor(t *testing.T) {
	// Nothing moves: no volume, no breakout, no trend edge. Low volatility
	// alone is not enough to leave "poor".
	s := flatSeries(60, 100, 1000000)
	q := analyze(t, s)

	if q.Quality != "poor" {
		t.Errorf("expected poor quality on flat series, got %+v", q)
	}
	if q.Confidence >= qualityFair {
		t.Errorf("expected confidence below %.1f, got %.2f", qualityFair, q.Confidence)
	}
}

func TestQualityLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.85, "excellent"},
		{0.8, "excellent"},
		{0.7, "good"},
		{0.6, "good"},
		{0.45, "fair"},
		{0.4, "fair"},
		{0.39, "poor"},
		{0, "poor"},
	}
	for _, tt := range tests {
		if got := qualityLabel(tt.score); got != tt.want {
			t.Errorf("qualityLabel(%.2f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
