package strategy

import (
	"math"

	"StockAdvisor/internal/model"
)

// Advice texts tied to each recommendation.
const (
	adviceStrongBuy = "Uptrend confirmed! Buying now may be profitable."
	adviceHold      = "Stock above short-term trend but below long-term average. Watch carefully."
	adviceSell      = "Stock below both moving averages. Consider selling."
)

// Recommend maps the latest price against the short- and long-term moving
// averages, evaluated in strict order:
//
//	latest > shortMA > longMA  -> Strong Buy
//	latest > shortMA           -> Hold
//	otherwise                  -> Sell
//
// A nil moving average (insufficient history) never satisfies a comparison.
func Recommend(latest float64, shortMA, longMA *float64) (model.Recommendation, string) {
	if shortMA != nil && longMA != nil && latest > *shortMA && *shortMA > *longMA {
		return model.RecStrongBuy, adviceStrongBuy
	}
	if shortMA != nil && latest > *shortMA {
		return model.RecHold, adviceHold
	}
	return model.RecSell, adviceSell
}

// Health thresholds on trailing P/E and dividend yield.
const (
	healthPEStrong    = 20
	healthPEModerate  = 30
	healthMinDivYield = 0.02
)

// AssessHealth labels financial health from fundamentals. A missing P/E
// counts as infinitely expensive; a missing dividend yield as zero.
func AssessHealth(pe, divYield *float64) model.Health {
	p := math.Inf(1)
	if pe != nil {
		p = *pe
	}
	dy := 0.0
	if divYield != nil {
		dy = *divYield
	}
	switch {
	case p < healthPEStrong && dy > healthMinDivYield:
		return model.HealthStrong
	case p < healthPEModerate:
		return model.HealthModerate
	default:
		return model.HealthWeak
	}
}
