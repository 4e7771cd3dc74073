package model

import (
	"testing"
	"time"
)

func series(symbol string, closes []float64) *BarSeries {
	bars := make([]Bar, len(closes))
	for i, c := range closes {
		bars[i] = Bar{
			Time:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Close:  c,
			Volume: 1000000,
		}
	}
	return &BarSeries{Symbol: symbol, Bars: bars}
}

func TestNewStockPrice(t *testing.T) {
	p := NewStockPrice(series("TEST", []float64{100, 102}))

	if p.CurrentPrice != 102 {
		t.Errorf("expected current price 102, got %v", p.CurrentPrice)
	}
	if p.ChangePct != 2.0 {
		t.Errorf("expected +2%% change, got %v", p.ChangePct)
	}
	// Indicators absent: average volume stays zero rather than NaN garbage.
	if p.AvgVolume != 0 {
		t.Errorf("expected zero avg volume without indicators, got %v", p.AvgVolume)
	}
}

func TestNewStockPrice_SingleBar(t *testing.T) {
	p := NewStockPrice(series("ONE", []float64{50}))
	if p.ChangePct != 0 {
		t.Errorf("expected zero change with one bar, got %v", p.ChangePct)
	}
}

func result(symbol string, breakout BreakoutSignal, volume VolumeSignal) ScreeningResult {
	return ScreeningResult{
		Price:   StockPrice{Symbol: symbol},
		Signals: CombinedSignals{Breakout: breakout, Volume: volume},
	}
}

func TestScreeningResults_Counts(t *testing.T) {
	rs := &ScreeningResults{
		Results: []ScreeningResult{
			result("BOTH", ResistanceBreakout(0.05), VolumeSpike(2.5)),
			result("BRK", MABreakout(0.02), NoVolumeSpike(1.0)),
			result("VOL", NoBreakout(), VolumeSpike(3.0)),
			result("NONE", NoBreakout(), NoVolumeSpike(0.8)),
		},
		Failed: []FailedScreen{{Symbol: "DEAD", Reason: "no data"}},
	}

	if rs.TotalScreened() != 4 || rs.FailedCount() != 1 {
		t.Errorf("unexpected totals: %d screened, %d failed", rs.TotalScreened(), rs.FailedCount())
	}
	if rs.SignalCount() != 3 {
		t.Errorf("expected 3 with signals, got %d", rs.SignalCount())
	}
	if rs.BreakoutCount() != 2 {
		t.Errorf("expected 2 breakouts, got %d", rs.BreakoutCount())
	}
	if rs.VolumeSpikeCount() != 2 {
		t.Errorf("expected 2 volume spikes, got %d", rs.VolumeSpikeCount())
	}
}

func TestTopSignals_Ordering(t *testing.T) {
	rs := &ScreeningResults{
		Results: []ScreeningResult{
			result("NONE", NoBreakout(), NoVolumeSpike(0.5)),
			result("WEAKBOTH", ResistanceBreakout(0.03), VolumeSpike(2.1)),
			result("VOLONLY", NoBreakout(), VolumeSpike(4.0)),
			result("STRONGBOTH", ResistanceBreakout(0.08), VolumeSpike(2.5)),
			result("BRKONLY", MABreakout(0.04), NoVolumeSpike(1.1)),
		},
	}

	top := rs.TopSignals(0)
	want := []string{"STRONGBOTH", "WEAKBOTH", "BRKONLY", "VOLONLY"}
	if len(top) != len(want) {
		t.Fatalf("expected %d ranked results, got %d", len(want), len(top))
	}
	for i, symbol := range want {
		if top[i].Symbol() != symbol {
			t.Errorf("rank %d: expected %s, got %s", i+1, symbol, top[i].Symbol())
		}
	}

	if limited := rs.TopSignals(2); len(limited) != 2 {
		t.Errorf("expected limit of 2 respected, got %d", len(limited))
	}
}

func TestCombinedSignals(t *testing.T) {
	none := CombinedSignals{Breakout: NoBreakout(), Volume: NoVolumeSpike(1.0)}
	if none.HasAnySignal() || none.SignalCount() != 0 {
		t.Errorf("expected quiet signals, got %+v", none)
	}

	both := CombinedSignals{Breakout: ResistanceBreakout(0.05), Volume: VolumeSpike(2.0)}
	if !both.HasAnySignal() || both.SignalCount() != 2 {
		t.Errorf("expected two active signals, got %+v", both)
	}
}
