package model

// Recommendation is the trend-based trading call.
type Recommendation string

const (
	RecStrongBuy Recommendation = "Strong Buy"
	RecHold      Recommendation = "Hold"
	RecSell      Recommendation = "Sell"
)

// Health is the qualitative financial-health label derived from fundamentals.
type Health string

const (
	HealthStrong   Health = "Strong"
	HealthModerate Health = "Moderate"
	HealthWeak     Health = "Weak"
)

// StockMetrics holds all values derived from one fetch of price history and
// fundamentals. Immutable once computed. Volatility and the moving averages
// are nil when the window holds too few bars to define them.
type StockMetrics struct {
	LatestPrice    float64
	PreviousClose  float64
	PriceChange    float64
	PriceChangePct float64
	HighPrice      float64
	LowPrice       float64
	Volume         float64
	Volatility     *float64
	ShortTermMA    *float64
	LongTermMA     *float64
	YearlyChange   float64
	Recommendation Recommendation
	Advice         string
	Health         Health
}
