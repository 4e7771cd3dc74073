// Package display renders screening results for the console.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"StockScout/internal/model"
	"StockScout/internal/screener"
)

const lineWidth = 80

// Console writes formatted screening output to w.
type Console struct {
	Out   io.Writer
	Quiet bool
}

// New creates a console display.
func New(out io.Writer, quiet bool) *Console {
	return &Console{Out: out, Quiet: quiet}
}

func (c *Console) header(title string) {
	sep := strings.Repeat("=", lineWidth)
	fmt.Fprintf(c.Out, "\n%s\n %s\n%s\n", sep, title, sep)
}

func (c *Console) footer() {
	fmt.Fprintln(c.Out, strings.Repeat("=", lineWidth))
}

// Welcome prints the startup banner unless quiet.
func (c *Console) Welcome() {
	if c.Quiet {
		return
	}
	c.header("STOCKSCOUT — breakout and volume spike screener")
}

// ScreeningResults prints a full screening run.
func (c *Console) ScreeningResults(results *model.ScreeningResults) {
	c.header("STOCK SCREENING RESULTS")

	withSignals := results.WithSignals()
	if len(withSignals) > 0 {
		fmt.Fprintf(c.Out, "\nSTOCKS WITH SIGNALS (%d found):\n", len(withSignals))
		fmt.Fprintln(c.Out, strings.Repeat("-", lineWidth))
		for _, r := range withSignals {
			c.result(r)
		}
	} else {
		fmt.Fprintln(c.Out, "\nNo stocks with signals found in current screening.")
	}

	fmt.Fprintf(c.Out, "\nSUMMARY: %d screened, %d failed | %d with signals (%d breakouts, %d volume spikes)\n",
		results.TotalScreened(), results.FailedCount(),
		results.SignalCount(), results.BreakoutCount(), results.VolumeSpikeCount())

	for _, f := range results.Failed {
		fmt.Fprintf(c.Out, "   skipped %s: %s\n", f.Symbol, f.Reason)
	}
	c.footer()
}

// TopOpportunities prints the ranked opportunity list.
func (c *Console) TopOpportunities(top []model.ScreeningResult) {
	c.header(fmt.Sprintf("TOP %d INVESTMENT OPPORTUNITIES", len(top)))

	if len(top) == 0 {
		fmt.Fprintln(c.Out, "\nNo opportunities found.")
	}
	for i, r := range top {
		fmt.Fprintf(c.Out, "\n#%d — %s\n", i+1, r.Symbol())
		c.result(r)
	}
	c.footer()
}

// MarketAnalysis prints the market-condition summary.
func (c *Console) MarketAnalysis(a screener.MarketAnalysis) {
	c.header("MARKET CONDITION ANALYSIS")

	condition := strings.ToUpper(strings.ReplaceAll(a.Condition, "_", " "))
	fmt.Fprintf(c.Out, "\nOverall market condition: %s\n", condition)
	fmt.Fprintf(c.Out, "Signal percentage: %.1f%%\n", a.SignalPct)
	fmt.Fprintf(c.Out, "Breakout stocks: %d\n", a.BreakoutCount)
	fmt.Fprintf(c.Out, "Volume spike stocks: %d\n", a.VolumeSpikeCount)
	fmt.Fprintf(c.Out, "Total screened: %d\n", a.TotalScreened)
	c.footer()
}

// HealthStatus prints the component health report.
func (c *Console) HealthStatus(h screener.HealthStatus) {
	c.header("SYSTEM HEALTH CHECK")
	fmt.Fprintf(c.Out, "\nOverall:     %s\n", h.Overall)
	fmt.Fprintf(c.Out, "Data source: %s\n", h.DataSource)
	fmt.Fprintf(c.Out, "Pipeline:    %s\n", h.Pipeline)
	c.footer()
}

// Error prints an error message.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "\nERROR: %s\n", msg)
}

func (c *Console) result(r model.ScreeningResult) {
	fmt.Fprintf(c.Out, "\n%s\n", r.Symbol())
	fmt.Fprintf(c.Out, "   Price: $%.2f (%+.2f%%)\n", r.Price.CurrentPrice, r.Price.ChangePct)
	fmt.Fprintf(c.Out, "   Volume: %s (avg: %s)\n",
		humanize.Comma(r.Price.Volume), humanize.Comma(r.Price.AvgVolume))

	if r.Signals.Breakout.Signal {
		fmt.Fprintf(c.Out, "   BREAKOUT: %s (strength: %.2f%%)\n",
			r.Signals.Breakout.Type, r.Signals.Breakout.Strength*100)
	}
	if r.Signals.Volume.Signal {
		fmt.Fprintf(c.Out, "   VOLUME SPIKE: %.1fx average\n", r.Signals.Volume.Ratio)
	}
	if r.Quality != nil {
		fmt.Fprintf(c.Out, "   Quality: %s (confidence %.2f)", r.Quality.Quality, r.Quality.Confidence)
		if len(r.Quality.Factors) > 0 {
			fmt.Fprintf(c.Out, " [%s]", strings.Join(r.Quality.Factors, ", "))
		}
		fmt.Fprintln(c.Out)
	}
}
