package calculator

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"StockAdvisor/internal/model"
)

// TradingDaysPerYear is the annualization factor for daily volatility.
const TradingDaysPerYear = 252

// DailyReturns computes fractional close-over-close changes. The first bar
// has no predecessor and contributes no return; bars following a zero close
// are skipped rather than dividing by zero.
func DailyReturns(bars []model.OHLCV) []float64 {
	if len(bars) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (bars[i].Close-prev)/prev)
	}
	return returns
}

// AnnualizedVolatility is the sample standard deviation of daily returns
// scaled by sqrt(252). Errors when no return observations exist; a single
// observation has no measurable dispersion and yields 0.
func AnnualizedVolatility(returns []float64) (float64, error) {
	if len(returns) == 0 {
		return 0, errors.New("no return observations")
	}
	if len(returns) == 1 {
		return 0, nil
	}
	return stat.StdDev(returns, nil) * math.Sqrt(TradingDaysPerYear), nil
}

// PercentChange returns the change from previous to latest as a percentage.
// Defined as 0 when previous is 0.
func PercentChange(latest, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (latest - previous) / previous * 100
}

// YearlyChange returns the percent change of the latest price against the
// first close of the one-year window.
func YearlyChange(latest float64, yearBars []model.OHLCV) (float64, error) {
	if len(yearBars) == 0 {
		return 0, errors.New("no bars in the one-year window")
	}
	first := yearBars[0].Close
	if first == 0 {
		return 0, errors.New("first close of the one-year window is zero")
	}
	return (latest - first) / first * 100, nil
}
