package recorder

import (
	"time"

	"github.com/google/uuid"

	"StockScout/internal/model"
)

// RunSummary is the audit record for one screening run.
type RunSummary struct {
	RunID        string `db:"run_id"`
	Timestamp    int64  `db:"timestamp"`
	Mode         string `db:"mode"`
	Period       string `db:"period"`
	Requested    int    `db:"symbols_requested"`
	Successful   int    `db:"successful"`
	Failed       int    `db:"failed"`
	WithSignals  int    `db:"with_signals"`
	Breakouts    int    `db:"breakouts"`
	VolumeSpikes int    `db:"volume_spikes"`
	DurationMs   int64  `db:"duration_ms"`

	Results []model.ScreeningResult `db:"-"`
}

// NewRunSummary builds the audit record for a completed run.
func NewRunSummary(mode, period string, requested int, results *model.ScreeningResults, duration time.Duration) *RunSummary {
	return &RunSummary{
		RunID:        uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		Mode:         mode,
		Period:       period,
		Requested:    requested,
		Successful:   results.TotalScreened(),
		Failed:       results.FailedCount(),
		WithSignals:  results.SignalCount(),
		Breakouts:    results.BreakoutCount(),
		VolumeSpikes: results.VolumeSpikeCount(),
		DurationMs:   duration.Milliseconds(),
		Results:      results.Results,
	}
}

// Recorder persists screening audit events. It is injected into the
// orchestration layer and called after each run; the core never sees it.
type Recorder interface {
	RecordRun(run *RunSummary) error
	Close() error
}
