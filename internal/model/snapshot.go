package model

import "time"

// Snapshot is the latest computed state for one ticker, persisted
// last-write-wins per ticker key.
type Snapshot struct {
	Ticker    string
	Profile   CompanyProfile
	Metrics   StockMetrics
	FetchedAt time.Time
}
