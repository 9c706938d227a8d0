package analyzer

import (
	"fmt"
	"log"

	"StockAdvisor/internal/calculator"
	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/strategy"
)

// Moving-average periods over the one-month daily window.
const (
	ShortTermPeriod = 20
	LongTermPeriod  = 50
)

// Analyzer derives StockMetrics and a CompanyProfile from freshly fetched
// provider data. Nothing is cached: every call fetches from scratch.
type Analyzer struct {
	Fetcher collector.Fetcher
}

// New creates an Analyzer.
func New(fetcher collector.Fetcher) *Analyzer {
	return &Analyzer{Fetcher: fetcher}
}

// Analyze fetches the one-month and one-year daily series plus fundamentals
// for a resolved ticker and computes all derived metrics. It fails when the
// one-month series is empty, the one-year window is unusable, or the
// fundamentals fetch fails; insufficient history for a moving average or for
// volatility degrades that field to nil instead.
func (a *Analyzer) Analyze(symbol string) (*model.CompanyProfile, *model.StockMetrics, error) {
	monthBars, err := a.Fetcher.History(symbol, collector.RangeOneMonth, collector.IntervalDaily)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch 1mo history: %w", err)
	}
	if len(monthBars) == 0 {
		return nil, nil, fmt.Errorf("no price data for %s", symbol)
	}
	yearBars, err := a.Fetcher.History(symbol, collector.RangeOneYear, collector.IntervalDaily)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch 1y history: %w", err)
	}
	profile, err := a.Fetcher.Info(symbol)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch fundamentals: %w", err)
	}

	m := &model.StockMetrics{}

	latest := monthBars[len(monthBars)-1]
	m.LatestPrice = latest.Close
	m.Volume = latest.Volume
	m.PreviousClose = m.LatestPrice // one-bar series: day change is 0
	if len(monthBars) > 1 {
		m.PreviousClose = monthBars[len(monthBars)-2].Close
	}
	m.PriceChange = m.LatestPrice - m.PreviousClose
	m.PriceChangePct = calculator.PercentChange(m.LatestPrice, m.PreviousClose)

	high, low, err := calculator.PeriodRange(monthBars)
	if err != nil {
		return nil, nil, fmt.Errorf("period range: %w", err)
	}
	m.HighPrice = high
	m.LowPrice = low

	returns := calculator.DailyReturns(monthBars)
	if vol, err := calculator.AnnualizedVolatility(returns); err != nil {
		log.Printf("[WARN] volatility for %s unavailable: %v", symbol, err)
	} else {
		m.Volatility = &vol
	}

	closes := calculator.Closes(monthBars)
	if ma, err := calculator.SMA(closes, ShortTermPeriod); err != nil {
		log.Printf("[WARN] %d-period MA for %s unavailable: %v", ShortTermPeriod, symbol, err)
	} else {
		m.ShortTermMA = &ma
	}
	if ma, err := calculator.SMA(closes, LongTermPeriod); err != nil {
		log.Printf("[WARN] %d-period MA for %s unavailable: %v", LongTermPeriod, symbol, err)
	} else {
		m.LongTermMA = &ma
	}

	m.Recommendation, m.Advice = strategy.Recommend(m.LatestPrice, m.ShortTermMA, m.LongTermMA)

	yearly, err := calculator.YearlyChange(m.LatestPrice, yearBars)
	if err != nil {
		return nil, nil, fmt.Errorf("yearly change: %w", err)
	}
	m.YearlyChange = yearly

	m.Health = strategy.AssessHealth(profile.PERatio, profile.DividendYield)

	return profile, m, nil
}
