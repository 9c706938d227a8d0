package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"StockAdvisor/internal/model"
)

func f(v float64) *float64 { return &v }

func testSnapshot(ticker string, price float64) *model.Snapshot {
	return &model.Snapshot{
		Ticker: ticker,
		Profile: model.CompanyProfile{
			Name:          "Test Ltd",
			Sector:        "Technology",
			PERatio:       f(18.5),
			DividendYield: f(0.025),
		},
		Metrics: model.StockMetrics{
			LatestPrice:    price,
			PreviousClose:  price - 1,
			PriceChange:    1,
			PriceChangePct: 1,
			HighPrice:      price + 5,
			LowPrice:       price - 5,
			Volume:         123456,
			Volatility:     f(0.22),
			ShortTermMA:    f(price - 2),
			YearlyChange:   12.5,
			Recommendation: model.RecHold,
			Advice:         "watch",
			Health:         model.HealthStrong,
		},
		FetchedAt: time.Unix(1756700000, 0),
	}
}

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertAndGet(t *testing.T) {
	s := openTestStore(t)

	if err := s.Upsert(testSnapshot("tcs.ns", 4000)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := s.Get("TCS.NS")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Ticker != "TCS.NS" {
		t.Errorf("expected uppercase ticker key, got %q", got.Ticker)
	}
	if got.Metrics.LatestPrice != 4000 {
		t.Errorf("expected price 4000, got %v", got.Metrics.LatestPrice)
	}
	if got.Profile.PERatio == nil || *got.Profile.PERatio != 18.5 {
		t.Errorf("expected P/E 18.5, got %v", got.Profile.PERatio)
	}
	if got.Metrics.LongTermMA != nil {
		t.Errorf("expected nil long-term MA to survive the round trip, got %v", *got.Metrics.LongTermMA)
	}
	if got.Metrics.Recommendation != model.RecHold || got.Metrics.Health != model.HealthStrong {
		t.Errorf("unexpected labels: %s / %s", got.Metrics.Recommendation, got.Metrics.Health)
	}
	if !got.FetchedAt.Equal(time.Unix(1756700000, 0)) {
		t.Errorf("unexpected fetched_at: %v", got.FetchedAt)
	}
}

func TestUpsert_LastWriteWins(t *testing.T) {
	s := openTestStore(t)

	if err := s.Upsert(testSnapshot("INFY.NS", 1500)); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := s.Upsert(testSnapshot("INFY.NS", 1600)); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := s.Get("INFY.NS")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Metrics.LatestPrice != 1600 {
		t.Errorf("expected the second write to win, got price %v", got.Metrics.LatestPrice)
	}

	tickers, err := s.ListTickers()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickers) != 1 {
		t.Errorf("expected a single row per ticker, got %v", tickers)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get("MISSING.NS"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListTickers_Sorted(t *testing.T) {
	s := openTestStore(t)
	for _, tk := range []string{"ZEE.NS", "ACC.NS", "INFY.NS"} {
		if err := s.Upsert(testSnapshot(tk, 100)); err != nil {
			t.Fatalf("upsert %s: %v", tk, err)
		}
	}
	got, err := s.ListTickers()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"ACC.NS", "INFY.NS", "ZEE.NS"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
