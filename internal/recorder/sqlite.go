package recorder

import (
	"fmt"
	"log"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"StockScout/internal/model"
)

// SQLiteRecorder persists run and result audit records to a SQLite
// database.
type SQLiteRecorder struct {
	db *sqlx.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS screening_runs (
			run_id            TEXT PRIMARY KEY,
			timestamp         INTEGER NOT NULL,
			mode              TEXT,
			period            TEXT,
			symbols_requested INTEGER,
			successful        INTEGER,
			failed            INTEGER,
			with_signals      INTEGER,
			breakouts         INTEGER,
			volume_spikes     INTEGER,
			duration_ms       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON screening_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS screening_results (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id            TEXT NOT NULL,
			symbol            TEXT NOT NULL,
			price             REAL,
			change_pct        REAL,
			volume            INTEGER,
			avg_volume        INTEGER,
			breakout_type     TEXT,
			breakout_strength REAL,
			volume_spike      INTEGER,
			volume_ratio      REAL,
			quality           TEXT,
			confidence        REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_run ON screening_results(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_symbol ON screening_results(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// resultRow is the flattened per-symbol audit row.
type resultRow struct {
	RunID            string  `db:"run_id"`
	Symbol           string  `db:"symbol"`
	Price            float64 `db:"price"`
	ChangePct        float64 `db:"change_pct"`
	Volume           int64   `db:"volume"`
	AvgVolume        int64   `db:"avg_volume"`
	BreakoutType     string  `db:"breakout_type"`
	BreakoutStrength float64 `db:"breakout_strength"`
	VolumeSpike      bool    `db:"volume_spike"`
	VolumeRatio      float64 `db:"volume_ratio"`
	Quality          string  `db:"quality"`
	Confidence       float64 `db:"confidence"`
}

func newResultRow(runID string, res model.ScreeningResult) resultRow {
	row := resultRow{
		RunID:            runID,
		Symbol:           res.Symbol(),
		Price:            res.Price.CurrentPrice,
		ChangePct:        res.Price.ChangePct,
		Volume:           res.Price.Volume,
		AvgVolume:        res.Price.AvgVolume,
		BreakoutType:     string(res.Signals.Breakout.Type),
		BreakoutStrength: res.Signals.Breakout.Strength,
		VolumeSpike:      res.Signals.Volume.Signal,
		VolumeRatio:      res.Signals.Volume.Ratio,
	}
	if res.Quality != nil {
		row.Quality = res.Quality.Quality
		row.Confidence = res.Quality.Confidence
	}
	return row
}

// RecordRun writes the run summary and its per-symbol rows in one
// transaction.
func (r *SQLiteRecorder) RecordRun(run *RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExec(`INSERT INTO screening_runs
		(run_id, timestamp, mode, period, symbols_requested, successful, failed,
		 with_signals, breakouts, volume_spikes, duration_ms)
		VALUES (:run_id, :timestamp, :mode, :period, :symbols_requested, :successful,
		 :failed, :with_signals, :breakouts, :volume_spikes, :duration_ms)`, run); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, res := range run.Results {
		row := newResultRow(run.RunID, res)
		if _, err := tx.NamedExec(`INSERT INTO screening_results
			(run_id, symbol, price, change_pct, volume, avg_volume,
			 breakout_type, breakout_strength, volume_spike, volume_ratio,
			 quality, confidence)
			VALUES (:run_id, :symbol, :price, :change_pct, :volume, :avg_volume,
			 :breakout_type, :breakout_strength, :volume_spike, :volume_ratio,
			 :quality, :confidence)`, row); err != nil {
			return fmt.Errorf("insert result %s: %w", row.Symbol, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
