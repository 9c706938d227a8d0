package advisor

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"StockAdvisor/internal/analyzer"
	"StockAdvisor/internal/history"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/projector"
	"StockAdvisor/internal/resolver"
	"StockAdvisor/internal/store"
)

// Failure kinds surfaced to callers. Each maps to a distinct user-facing
// message; no other error kind escapes Lookup or Project.
var (
	ErrEmptyQuery          = errors.New("company name is empty")
	ErrUnsupportedExchange = errors.New("no listing on a permitted exchange")
	ErrNotFound            = errors.New("company not found")
	ErrDataUnavailable     = errors.New("unable to fetch stock data")
)

// Result is the outcome of a successful lookup.
type Result struct {
	Ticker  string
	Profile *model.CompanyProfile
	Metrics *model.StockMetrics
}

// Advisor wires the resolver, analyzer, snapshot store, and session history
// into the lookup and projection entry points. All dependencies are injected.
type Advisor struct {
	Resolver *resolver.Resolver
	Analyzer *analyzer.Analyzer
	Store    store.Store
	History  *history.Store
}

// New creates an Advisor.
func New(res *resolver.Resolver, an *analyzer.Analyzer, st store.Store, hist *history.Store) *Advisor {
	return &Advisor{Resolver: res, Analyzer: an, Store: st, History: hist}
}

// Lookup resolves a company name, analyzes the resolved ticker, persists the
// snapshot, and records the name in the session history. The history entry
// is added as soon as resolution succeeds, even if the later fetch fails.
func (a *Advisor) Lookup(session, companyName string) (*Result, error) {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil, ErrEmptyQuery
	}

	res := a.Resolver.Resolve(name)
	switch res.Status {
	case resolver.StatusUnsupported:
		return nil, ErrUnsupportedExchange
	case resolver.StatusNotFound:
		return nil, ErrNotFound
	}
	a.History.Append(session, name)

	profile, metrics, err := a.Analyzer.Analyze(res.Symbol)
	if err != nil {
		log.Printf("[WARN] analyze %s: %v", res.Symbol, err)
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, res.Symbol)
	}

	snap := &model.Snapshot{
		Ticker:    strings.ToUpper(res.Symbol),
		Profile:   *profile,
		Metrics:   *metrics,
		FetchedAt: time.Now().UTC(),
	}
	if err := a.Store.Upsert(snap); err != nil {
		log.Printf("[WARN] store snapshot %s: %v", snap.Ticker, err)
	}

	return &Result{Ticker: snap.Ticker, Profile: profile, Metrics: metrics}, nil
}

// Project runs a full lookup (fresh resolve, fetch, and persist) and then
// projects the hypothetical investment. Invalid amount/years surface as
// projector.ErrInvalidInput, distinct from the lookup failure kinds.
func (a *Advisor) Project(session, companyName, amountStr, yearsStr string) (*Result, *model.InvestmentProjection, error) {
	res, err := a.Lookup(session, companyName)
	if err != nil {
		return nil, nil, err
	}
	proj, err := projector.Project(amountStr, yearsStr, res.Metrics.LatestPrice,
		res.Profile, res.Metrics.Recommendation, res.Metrics.Volatility)
	if err != nil {
		return res, nil, err
	}
	return res, proj, nil
}

// SearchHistory returns the session's searched names in insertion order.
func (a *Advisor) SearchHistory(session string) []string {
	return a.History.List(session)
}

// ClearHistory empties the session's search history.
func (a *Advisor) ClearHistory(session string) {
	a.History.Clear(session)
}
