package calculator

import (
	"math"
	"testing"

	"StockScout/internal/model"
)

func makeBars(n int) []model.Bar {
	bars := make([]model.Bar, n)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = model.Bar{Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000000}
	}
	return bars
}

func TestCompute_Alignment(t *testing.T) {
	bars := makeBars(60)
	ind := Compute(bars)

	for name, series := range map[string][]float64{
		"SMA20":        ind.SMA20,
		"SMA50":        ind.SMA50,
		"Resistance20": ind.Resistance20,
		"Support20":    ind.Support20,
		"VolumeMA20":   ind.VolumeMA20,
		"Volatility20": ind.Volatility20,
	} {
		if len(series) != len(bars) {
			t.Errorf("%s: expected length %d, got %d", name, len(bars), len(series))
		}
	}
}

func TestCompute_Values(t *testing.T) {
	bars := makeBars(60)
	ind := Compute(bars)

	// Closes 40..59 average to 149.5; the window max high is close+1.
	if math.Abs(ind.SMA20[59]-149.5) > 1e-9 {
		t.Errorf("SMA20[59]: expected 149.5, got %v", ind.SMA20[59])
	}
	if math.Abs(ind.SMA50[59]-134.5) > 1e-9 {
		t.Errorf("SMA50[59]: expected 134.5, got %v", ind.SMA50[59])
	}
	if ind.Resistance20[59] != 160 {
		t.Errorf("Resistance20[59]: expected 160, got %v", ind.Resistance20[59])
	}
	if ind.Support20[59] != 139 {
		t.Errorf("Support20[59]: expected 139, got %v", ind.Support20[59])
	}
	if math.Abs(ind.VolumeMA20[59]-1000000) > 1e-6 {
		t.Errorf("VolumeMA20[59]: expected 1000000, got %v", ind.VolumeMA20[59])
	}

	if !math.IsNaN(ind.SMA20[18]) {
		t.Errorf("SMA20[18]: expected NaN before window fills, got %v", ind.SMA20[18])
	}
	if !math.IsNaN(ind.SMA50[48]) {
		t.Errorf("SMA50[48]: expected NaN before window fills, got %v", ind.SMA50[48])
	}
}

func TestCompute_ShortSeries(t *testing.T) {
	ind := Compute(makeBars(5))
	for i := 0; i < 5; i++ {
		if !math.IsNaN(ind.SMA20[i]) || !math.IsNaN(ind.Resistance20[i]) {
			t.Errorf("index %d: expected NaN indicators on short series", i)
		}
	}
}

func TestAttach(t *testing.T) {
	series := &model.BarSeries{Symbol: "TEST", Bars: makeBars(60)}
	ind := Attach(series)
	if series.Indicators != ind {
		t.Error("expected indicators attached to the series")
	}
}
