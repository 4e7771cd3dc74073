package collector

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPeriodDays(t *testing.T) {
	if !ValidPeriod("3mo") || ValidPeriod("7w") {
		t.Error("period validation mismatch")
	}
	if PeriodDays("1y") != 252 {
		t.Errorf("expected 252 days for 1y, got %d", PeriodDays("1y"))
	}
	if PeriodDays("bogus") != PeriodDays(DefaultPeriod) {
		t.Error("expected unknown period to fall back to default")
	}
}

func TestRESTFetcher(t *testing.T) {
	now := time.Now().Unix()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/bars/daily" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("unexpected symbol %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		// Out of order on purpose; the fetcher must sort chronologically.
		json.NewEncoder(w).Encode([]restBar{
			{Timestamp: now, Open: 101, High: 102, Low: 100, Close: 101.5, Volume: 2000000},
			{Timestamp: now - 86400, Open: 100, High: 101, Low: 99, Close: 100.5, Volume: 1000000},
		})
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "secret", "")
	bars, err := f.FetchDailyBars("AAPL", "1mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("expected bars sorted oldest first")
	}
	if bars[1].Close != 101.5 {
		t.Errorf("expected latest close 101.5, got %v", bars[1].Close)
	}
}

func TestRESTFetcher_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "")
	if _, err := f.FetchDailyBars("AAPL", "1mo"); err == nil {
		t.Error("expected error on non-200 status")
	}
	if _, err := f.FetchDailyBars("AAPL", "7w"); err == nil {
		t.Error("expected error on unsupported period")
	}
}

func TestGenerateBars(t *testing.T) {
	bars := GenerateBars(100, 60)
	if len(bars) != 60 {
		t.Fatalf("expected 60 bars, got %d", len(bars))
	}
	for i, b := range bars {
		if b.High < b.Close || b.Low > b.Close {
			t.Errorf("bar %d: inconsistent OHLC %+v", i, b)
		}
		if i > 0 && !bars[i-1].Time.Before(b.Time) {
			t.Errorf("bar %d: timestamps not increasing", i)
		}
	}
}
