package projector

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"StockAdvisor/internal/model"
)

// ErrInvalidInput marks a rejected user input (non-numeric or out-of-range
// amount/years). Callers render it differently from data failures.
var ErrInvalidInput = errors.New("invalid input")

// Projection horizon bounds in years.
const (
	MinYears = 1
	MaxYears = 50
)

// Defaults applied when the profile lacks the corresponding field.
const (
	defaultAnnualReturn = 0.10
	defaultBeta         = 1.0
	defaultVolFactor    = 0.10
)

// Closing remarks tied to the recommendation driving the projection.
const (
	remarkStrongBuy = "Great opportunity based on current trends!"
	remarkHold      = "Monitor closely or diversify."
	remarkSell      = "Consider alternatives."
)

// Project computes the future value of investing `amountStr` for `yearsStr`
// years at the profile's dividend yield (10% default), plus annualized and
// cumulative returns, a dividend income estimate, a beta-adjusted return, and
// a volatility-banded value range. Projections assume a constant yield and
// share count.
func Project(amountStr, yearsStr string, latestPrice float64, profile *model.CompanyProfile,
	rec model.Recommendation, volatility *float64) (*model.InvestmentProjection, error) {

	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, amountStr)
	}
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return nil, fmt.Errorf("%w: amount must be greater than 0", ErrInvalidInput)
	}
	years, err := strconv.Atoi(strings.TrimSpace(yearsStr))
	if err != nil {
		return nil, fmt.Errorf("%w: years %q is not an integer", ErrInvalidInput, yearsStr)
	}
	if years < MinYears || years > MaxYears {
		return nil, fmt.Errorf("%w: years must be between %d and %d", ErrInvalidInput, MinYears, MaxYears)
	}
	if latestPrice <= 0 {
		return nil, fmt.Errorf("latest price must be positive, got %v", latestPrice)
	}

	annualReturn := defaultAnnualReturn
	if profile != nil && profile.DividendYield != nil {
		annualReturn = *profile.DividendYield
	}
	beta := defaultBeta
	if profile != nil && profile.Beta != nil {
		beta = *profile.Beta
	}
	volFactor := defaultVolFactor
	if volatility != nil {
		volFactor = *volatility
	}

	p := &model.InvestmentProjection{
		Amount:       amount,
		Years:        years,
		SharePrice:   latestPrice,
		NumShares:    amount / latestPrice,
		AnnualReturn: annualReturn,
		Beta:         beta,
		VolFactor:    volFactor,
	}

	p.FutureValue = amount * math.Pow(1+annualReturn, float64(years))
	p.AnnualizedReturnPct = (math.Pow(p.FutureValue/amount, 1/float64(years)) - 1) * 100
	p.CumulativeReturnPct = (p.FutureValue - amount) / amount * 100
	p.TotalDividends = latestPrice * annualReturn * p.NumShares * float64(years)

	p.RiskAdjustedPct = p.AnnualizedReturnPct
	if beta != 0 {
		p.RiskAdjustedPct = p.AnnualizedReturnPct / beta
	}

	p.LowerBound = p.FutureValue * (1 - volFactor)
	p.UpperBound = p.FutureValue * (1 + volFactor)

	p.FractionalShares = p.NumShares < 1
	switch rec {
	case model.RecStrongBuy:
		p.Remark = remarkStrongBuy
	case model.RecHold:
		p.Remark = remarkHold
	default:
		p.Remark = remarkSell
	}

	return p, nil
}
