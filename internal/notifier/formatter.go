package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"StockScout/internal/model"
	"StockScout/internal/screener"
)

// FormatScanReport formats a screening run into a Telegram message.
func FormatScanReport(results *model.ScreeningResults) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>StockScout scan</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Screened: %d ok, %d failed\n", results.TotalScreened(), results.FailedCount()))
	b.WriteString(fmt.Sprintf("Signals: %d (%d breakouts, %d volume spikes)\n",
		results.SignalCount(), results.BreakoutCount(), results.VolumeSpikeCount()))

	withSignals := results.WithSignals()
	if len(withSignals) == 0 {
		b.WriteString("\nNo signals today.\n")
		return b.String()
	}

	b.WriteString("\n")
	for _, r := range withSignals {
		b.WriteString(FormatResult(r))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatResult formats one symbol's signals for a Telegram message.
func FormatResult(r model.ScreeningResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔎 <b>%s</b> $%.2f (%+.2f%%)\n", r.Symbol(), r.Price.CurrentPrice, r.Price.ChangePct))

	if r.Signals.Breakout.Signal {
		b.WriteString(fmt.Sprintf("   %s +%.1f%%\n", breakoutLabel(r.Signals.Breakout.Type), r.Signals.Breakout.Strength*100))
	}
	if r.Signals.Volume.Signal {
		b.WriteString(fmt.Sprintf("   Volume spike %.1fx average\n", r.Signals.Volume.Ratio))
	}
	b.WriteString(fmt.Sprintf("   Volume %s (avg %s)\n",
		humanize.Comma(r.Price.Volume), humanize.Comma(r.Price.AvgVolume)))

	if r.Quality != nil {
		b.WriteString(fmt.Sprintf("   Quality: %s (%.2f)", r.Quality.Quality, r.Quality.Confidence))
		if len(r.Quality.Factors) > 0 {
			b.WriteString(" — " + strings.Join(r.Quality.Factors, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func breakoutLabel(t model.BreakoutType) string {
	switch t {
	case model.BreakoutResistance:
		return "🚀 Resistance breakout"
	case model.BreakoutMA:
		return "📈 MA breakout"
	default:
		return "Breakout"
	}
}

// FormatMarketAnalysis formats a market-condition summary.
func FormatMarketAnalysis(a screener.MarketAnalysis) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🌐 <b>Market analysis</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Condition: <b>%s</b>\n", a.Condition))
	b.WriteString(fmt.Sprintf("With signals: %.1f%% (%d of %d)\n", a.SignalPct, a.WithSignals, a.TotalScreened))
	b.WriteString(fmt.Sprintf("Breakouts: %.1f%% | Volume spikes: %.1f%%\n", a.BreakoutPct, a.VolumeSpikePct))
	return b.String()
}

// FormatTopOpportunities formats the ranked opportunity list.
func FormatTopOpportunities(top []model.ScreeningResult) string {
	if len(top) == 0 {
		return "No opportunities with signals found."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏆 <b>Top opportunities</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for i, r := range top {
		b.WriteString(fmt.Sprintf("%d. ", i+1))
		b.WriteString(FormatResult(r))
		b.WriteString("\n")
	}
	return b.String()
}
