package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"StockScout/internal/model"
)

func sampleResults() *model.ScreeningResults {
	return &model.ScreeningResults{
		Results: []model.ScreeningResult{
			{
				Price: model.StockPrice{Symbol: "AAPL", CurrentPrice: 103.5, ChangePct: 3.5, Volume: 3000000, AvgVolume: 1100000},
				Signals: model.CombinedSignals{
					Breakout: model.ResistanceBreakout(0.035),
					Volume:   model.VolumeSpike(2.7),
				},
				Quality: &model.SignalQuality{Quality: "good", Confidence: 0.7},
			},
			{
				Price:   model.StockPrice{Symbol: "MSFT", CurrentPrice: 50},
				Signals: model.CombinedSignals{Breakout: model.NoBreakout(), Volume: model.NoVolumeSpike(1.0)},
			},
		},
		Failed: []model.FailedScreen{{Symbol: "DEAD", Reason: "no data"}},
	}
}

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")

	rec, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	run := NewRunSummary("screen", "3mo", 3, sampleResults(), 1500*time.Millisecond)
	if err := rec.RecordRun(run); err != nil {
		t.Fatalf("record run: %v", err)
	}

	var runCount int
	if err := rec.db.Get(&runCount, "SELECT COUNT(*) FROM screening_runs"); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runCount != 1 {
		t.Errorf("expected 1 run row, got %d", runCount)
	}

	var got RunSummary
	if err := rec.db.Get(&got, "SELECT run_id, timestamp, mode, period, symbols_requested, successful, failed, with_signals, breakouts, volume_spikes, duration_ms FROM screening_runs"); err != nil {
		t.Fatalf("read run: %v", err)
	}
	if got.Mode != "screen" || got.Successful != 2 || got.Failed != 1 || got.WithSignals != 1 {
		t.Errorf("unexpected run row: %+v", got)
	}
	if got.DurationMs != 1500 {
		t.Errorf("expected 1500ms duration, got %d", got.DurationMs)
	}

	var rows []resultRow
	if err := rec.db.Select(&rows, "SELECT run_id, symbol, price, change_pct, volume, avg_volume, breakout_type, breakout_strength, volume_spike, volume_ratio, quality, confidence FROM screening_results ORDER BY symbol"); err != nil {
		t.Fatalf("read results: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 result rows, got %d", len(rows))
	}
	if rows[0].Symbol != "AAPL" || rows[0].BreakoutType != string(model.BreakoutResistance) || !rows[0].VolumeSpike {
		t.Errorf("unexpected AAPL row: %+v", rows[0])
	}
	if rows[0].Quality != "good" {
		t.Errorf("expected quality persisted, got %q", rows[0].Quality)
	}
	if rows[1].Symbol != "MSFT" || rows[1].VolumeSpike {
		t.Errorf("unexpected MSFT row: %+v", rows[1])
	}
}

func TestSQLiteRecorder_MultipleRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	rec, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	for i := 0; i < 3; i++ {
		run := NewRunSummary("scheduled", "3mo", 3, sampleResults(), time.Second)
		if err := rec.RecordRun(run); err != nil {
			t.Fatalf("record run %d: %v", i, err)
		}
	}

	var n int
	if err := rec.db.Get(&n, "SELECT COUNT(*) FROM screening_runs"); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("expected 3 runs, got %d", n)
	}
}

func TestNoopRecorder(t *testing.T) {
	rec := NewNoopRecorder()
	run := NewRunSummary("screen", "3mo", 0, &model.ScreeningResults{}, 0)
	if err := rec.RecordRun(run); err != nil {
		t.Errorf("noop should never fail: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("noop close should never fail: %v", err)
	}
}
