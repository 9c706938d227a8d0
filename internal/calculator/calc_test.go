package calculator

import (
	"math"
	"testing"
	"time"

	"StockAdvisor/internal/model"
)

func mkBars(closes ...float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestSMA(t *testing.T) {
	prices := make([]float64, 25)
	for i := range prices {
		prices[i] = float64(i + 1)
	}
	got, err := SMA(prices, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// trailing 20 of 1..25 is 6..25, mean 15.5
	if math.Abs(got-15.5) > 1e-9 {
		t.Errorf("expected 15.5, got %v", got)
	}
}

func TestSMA_InsufficientData(t *testing.T) {
	if _, err := SMA([]float64{1, 2, 3}, 20); err == nil {
		t.Error("expected error for fewer prices than the period")
	}
	if _, err := SMA([]float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for non-positive period")
	}
}

func TestDailyReturns(t *testing.T) {
	returns := DailyReturns(mkBars(100, 110, 99))
	if len(returns) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(returns))
	}
	if math.Abs(returns[0]-0.10) > 1e-9 {
		t.Errorf("expected first return 0.10, got %v", returns[0])
	}
	if math.Abs(returns[1]-(-0.10)) > 1e-9 {
		t.Errorf("expected second return -0.10, got %v", returns[1])
	}
}

func TestDailyReturns_ShortSeries(t *testing.T) {
	if got := DailyReturns(mkBars(100)); len(got) != 0 {
		t.Errorf("expected no returns for a one-bar series, got %v", got)
	}
	if got := DailyReturns(nil); len(got) != 0 {
		t.Errorf("expected no returns for an empty series, got %v", got)
	}
}

func TestDailyReturns_ZeroClose(t *testing.T) {
	returns := DailyReturns(mkBars(100, 0, 50))
	// the bar following the zero close contributes no return
	if len(returns) != 1 {
		t.Fatalf("expected 1 return, got %d", len(returns))
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	got, err := AnnualizedVolatility([]float64{0.01, -0.01, 0.01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// sample stddev 0.0115470 * sqrt(252)
	if math.Abs(got-0.183303) > 1e-4 {
		t.Errorf("expected ~0.183303, got %v", got)
	}
}

func TestAnnualizedVolatility_EmptyAndSingle(t *testing.T) {
	if _, err := AnnualizedVolatility(nil); err == nil {
		t.Error("expected error for empty return series")
	}
	got, err := AnnualizedVolatility([]float64{0.05})
	if err != nil {
		t.Fatalf("single observation must not error: %v", err)
	}
	if got != 0 {
		t.Errorf("single observation has no dispersion, expected 0, got %v", got)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		latest, previous, want float64
	}{
		{110, 100, 10},
		{90, 100, -10},
		{100, 100, 0},
		{50, 0, 0}, // zero previous close must not divide
	}
	for _, tt := range tests {
		if got := PercentChange(tt.latest, tt.previous); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PercentChange(%v, %v) = %v, want %v", tt.latest, tt.previous, got, tt.want)
		}
	}
}

func TestPeriodRange(t *testing.T) {
	high, low, err := PeriodRange(mkBars(100, 120, 90))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 121 || low != 89 {
		t.Errorf("expected high 121, low 89, got %v, %v", high, low)
	}
	if _, _, err := PeriodRange(nil); err == nil {
		t.Error("expected error for empty window")
	}
}

func TestYearlyChange(t *testing.T) {
	got, err := YearlyChange(120, mkBars(100, 105, 110))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-20) > 1e-9 {
		t.Errorf("expected 20%%, got %v", got)
	}
	if _, err := YearlyChange(120, nil); err == nil {
		t.Error("expected error for empty one-year window")
	}
	if _, err := YearlyChange(120, mkBars(0, 100)); err == nil {
		t.Error("expected error for zero first close")
	}
}
