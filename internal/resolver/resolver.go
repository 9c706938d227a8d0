package resolver

import (
	"log"
	"strings"

	"StockAdvisor/internal/collector"
)

// Status is the outcome kind of a ticker resolution.
type Status int

const (
	// StatusResolved means a symbol on a permitted exchange was found.
	StatusResolved Status = iota
	// StatusUnsupported means matches exist but none on a permitted
	// exchange. Distinct from StatusNotFound: the company is real, it is
	// just not listed where we trade.
	StatusUnsupported
	// StatusNotFound means the search errored or returned no matches.
	StatusNotFound
)

// Resolution is the tagged result of resolving a company name.
type Resolution struct {
	Status Status
	Symbol string
}

// DefaultExchanges are Yahoo's codes for the National Stock Exchange and the
// Bombay Stock Exchange.
var DefaultExchanges = []string{"NSI", "BSE"}

// Resolver maps free-text company names to exchange-qualified tickers,
// restricted to a permitted exchange set.
type Resolver struct {
	Fetcher   collector.Fetcher
	permitted map[string]bool
}

// New creates a Resolver. An empty exchange list falls back to
// DefaultExchanges.
func New(fetcher collector.Fetcher, exchanges []string) *Resolver {
	if len(exchanges) == 0 {
		exchanges = DefaultExchanges
	}
	permitted := make(map[string]bool, len(exchanges))
	for _, e := range exchanges {
		permitted[strings.ToUpper(e)] = true
	}
	return &Resolver{Fetcher: fetcher, permitted: permitted}
}

// Resolve returns the first provider-ordered match on a permitted exchange.
// Search failures and empty result sets both collapse to StatusNotFound;
// matches on the wrong exchange yield StatusUnsupported.
func (r *Resolver) Resolve(name string) Resolution {
	matches, err := r.Fetcher.Search(name)
	if err != nil {
		log.Printf("[WARN] symbol search for %q failed: %v", name, err)
		return Resolution{Status: StatusNotFound}
	}
	if len(matches) == 0 {
		return Resolution{Status: StatusNotFound}
	}
	for _, m := range matches {
		if r.permitted[strings.ToUpper(m.Exchange)] {
			return Resolution{Status: StatusResolved, Symbol: m.Symbol}
		}
	}
	return Resolution{Status: StatusUnsupported}
}
