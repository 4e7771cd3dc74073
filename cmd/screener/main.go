package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockScout/internal/collector"
	"StockScout/internal/config"
	"StockScout/internal/display"
	"StockScout/internal/model"
	"StockScout/internal/notifier"
	"StockScout/internal/recorder"
	"StockScout/internal/scheduler"
	"StockScout/internal/screener"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cfgPath           = flag.String("config", "configs/config.yaml", "path to YAML config")
		symbolsFlag       = flag.String("symbols", "", "comma-separated symbols to screen (default: config or built-in watchlist)")
		period            = flag.String("period", "", "lookback period: 1mo, 3mo, 6mo, 1y, 2y, 5y")
		volumeThreshold   = flag.Float64("volume-threshold", 0, "volume spike threshold multiplier (default 2.0)")
		breakoutThreshold = flag.Float64("breakout-threshold", 0, "breakout threshold fraction (default 0.02)")
		mode              = flag.String("mode", "screen", "operating mode: screen, signals-only, market-analysis, top-opportunities")
		limit             = flag.Int("limit", 5, "result limit in top-opportunities mode")
		jsonOut           = flag.Bool("json", false, "emit JSON instead of formatted text")
		quiet             = flag.Bool("quiet", false, "quiet mode, minimal output")
		healthCheck       = flag.Bool("health-check", false, "run system health check and exit")
		daemon            = flag.Bool("daemon", false, "run scheduled scans with Telegram delivery")
	)
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if *quiet {
		log.SetOutput(os.Stderr)
	}

	// .env first so it can feed the env overrides below.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	if v := os.Getenv("CONFIG_PATH"); v != "" && !isFlagSet("config") {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("[ERROR] load config: %v", err)
		return 1
	}

	// CLI flags override file and environment.
	if *symbolsFlag != "" {
		cfg.Symbols = splitSymbols(*symbolsFlag)
	}
	if *period != "" {
		cfg.Period = *period
	}
	if *volumeThreshold > 0 {
		cfg.Screener.VolumeSpikeThreshold = *volumeThreshold
	}
	if *breakoutThreshold > 0 {
		cfg.Screener.BreakoutThreshold = *breakoutThreshold
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[ERROR] config validation: %v", err)
		return 1
	}

	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	scr := screener.New(fetcher, cfg.StrategyConfig(), cfg.Period)
	out := display.New(os.Stdout, *quiet)

	if *healthCheck {
		status := scr.HealthCheck()
		if *jsonOut {
			printJSON(status)
		} else {
			out.HealthStatus(status)
		}
		if status.Overall != "healthy" {
			return 1
		}
		return 0
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		} else {
			rec = sr
			defer sr.Close()
		}
	}

	if *daemon {
		return runDaemon(cfg, scr, rec)
	}

	out.Welcome()
	if !*quiet {
		fmt.Printf("Screening %d stocks for breakouts and volume spikes...\n", len(cfg.Symbols))
	}
	return runOnce(scr, rec, out, cfg.Symbols, cfg.Period, *mode, *limit, *jsonOut)
}

// runOnce executes a single screening pass in the selected mode.
func runOnce(scr *screener.Screener, rec recorder.Recorder, out *display.Console, symbols []string, period, mode string, limit int, jsonOut bool) int {
	start := time.Now()

	switch mode {
	case "screen":
		results := scr.ScreenAll(symbols)
		if jsonOut {
			printJSON(results)
		} else {
			out.ScreeningResults(results)
		}
		recordRun(rec, mode, period, len(symbols), results, start)

	case "signals-only":
		results := scr.SignalsOnly(symbols)
		if jsonOut {
			printJSON(results)
		} else if results.SignalCount() > 0 {
			out.ScreeningResults(results)
		} else {
			out.Error("No signals detected in current screening.")
		}
		recordRun(rec, mode, period, len(symbols), results, start)

	case "market-analysis":
		analysis := scr.AnalyzeMarket(symbols)
		if jsonOut {
			printJSON(analysis)
		} else {
			out.MarketAnalysis(analysis)
		}

	case "top-opportunities":
		top := scr.TopOpportunities(symbols, limit)
		if jsonOut {
			printJSON(top)
		} else {
			out.TopOpportunities(top)
		}

	default:
		log.Printf("[ERROR] unknown mode: %s", mode)
		return 1
	}

	log.Printf("[INFO] screening completed in %.2fs", time.Since(start).Seconds())
	return 0
}

// runDaemon starts the cron scheduler and Telegram polling, blocking until
// a shutdown signal arrives.
func runDaemon(cfg *config.Config, scr *screener.Screener, rec recorder.Recorder) int {
	if err := cfg.ValidateDaemon(); err != nil {
		log.Printf("[ERROR] config validation: %v", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	sched := scheduler.NewScheduler(ctx, scr, cfg.Symbols, tn, rec)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Printf("[ERROR] register cron task: %v", err)
		return 1
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] StockScout is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	return 0
}

func recordRun(rec recorder.Recorder, mode, period string, requested int, results *model.ScreeningResults, start time.Time) {
	run := recorder.NewRunSummary(mode, period, requested, results, time.Since(start))
	if err := rec.RecordRun(run); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Printf("[ERROR] encode json: %v", err)
	}
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(strings.ToUpper(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
