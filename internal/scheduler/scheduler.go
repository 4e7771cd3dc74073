package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"StockScout/internal/notifier"
	"StockScout/internal/recorder"
	"StockScout/internal/screener"
)

// Scheduler runs screening scans on a cron schedule and serves Telegram
// commands between scans.
type Scheduler struct {
	Cron     *cron.Cron
	Screener *screener.Screener
	Symbols  []string
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, scr *screener.Screener, symbols []string, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Screener: scr,
		Symbols:  symbols,
		Notifier: tn,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// Register adds the scheduled scan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (manual trigger or
// RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running scheduled scan")
	start := time.Now()

	results := s.Screener.ScreenAll(s.Symbols)
	s.trySend(notifier.FormatScanReport(results))

	run := recorder.NewRunSummary("scheduled", s.Screener.Period, len(s.Symbols), results, time.Since(start))
	if err := s.Recorder.RecordRun(run); err != nil {
		log.Printf("[ERROR] record scan run: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		go s.scanTask()
		return "Scan started, report follows."
	case "/signals":
		results := s.Screener.SignalsOnly(s.Symbols)
		if results.SignalCount() == 0 {
			return "No signals right now."
		}
		return notifier.FormatScanReport(results)
	case "/market":
		return notifier.FormatMarketAnalysis(s.Screener.AnalyzeMarket(s.Symbols))
	case "/help":
		return "Commands:\n/scan — run a full scan now\n/signals — symbols with active signals\n/market — market condition summary"
	default:
		return "Unknown command, try /help"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
