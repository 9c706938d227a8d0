package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// SearchMatch is one candidate returned by a symbol search.
type SearchMatch struct {
	Symbol   string
	Exchange string
}
