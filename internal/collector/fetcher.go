package collector

import "StockAdvisor/internal/model"

// Supported history windows and intervals.
const (
	RangeOneMonth = "1mo"
	RangeOneYear  = "1y"
	IntervalDaily = "1d"
)

// Fetcher defines the interface to an external market-data provider.
type Fetcher interface {
	// Search returns candidate symbols for a free-text company name, in
	// provider order.
	Search(query string) ([]model.SearchMatch, error)
	// History returns the daily bars covering the trailing window, oldest
	// first. An empty slice means the provider has no data for the symbol.
	History(symbol, rng, interval string) ([]model.OHLCV, error)
	// Info returns the fundamentals snapshot for a symbol.
	Info(symbol string) (*model.CompanyProfile, error)
	Name() string
}
