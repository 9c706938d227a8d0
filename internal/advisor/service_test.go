package advisor

import (
	"errors"
	"testing"

	"StockAdvisor/internal/analyzer"
	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/history"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/projector"
	"StockAdvisor/internal/resolver"
	"StockAdvisor/internal/store"
)

// memStore records upserts for assertions.
type memStore struct {
	snaps map[string]*model.Snapshot
}

func newMemStore() *memStore { return &memStore{snaps: make(map[string]*model.Snapshot)} }

func (m *memStore) Upsert(s *model.Snapshot) error { m.snaps[s.Ticker] = s; return nil }
func (m *memStore) Get(t string) (*model.Snapshot, error) {
	if s, ok := m.snaps[t]; ok {
		return s, nil
	}
	return nil, store.ErrNotFound
}
func (m *memStore) ListTickers() ([]string, error) { return nil, nil }
func (m *memStore) Close() error                   { return nil }

func newTestAdvisor(fetcher collector.Fetcher, st store.Store) (*Advisor, *history.Store) {
	hist := history.NewStore()
	return New(resolver.New(fetcher, nil), analyzer.New(fetcher), st, hist), hist
}

func indianMatch() []model.SearchMatch {
	return []model.SearchMatch{{Symbol: "TEST.NS", Exchange: "NSI"}}
}

func TestLookup_Success(t *testing.T) {
	fetcher := &collector.MockFetcher{Matches: indianMatch()}
	st := newMemStore()
	adv, hist := newTestAdvisor(fetcher, st)
	sess := hist.NewSession()

	res, err := adv.Lookup(sess, "  Test Industries ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ticker != "TEST.NS" {
		t.Errorf("expected TEST.NS, got %q", res.Ticker)
	}
	if res.Metrics == nil || res.Profile == nil {
		t.Fatal("expected metrics and profile")
	}
	if _, ok := st.snaps["TEST.NS"]; !ok {
		t.Error("expected snapshot persisted under the ticker key")
	}
	got := adv.SearchHistory(sess)
	if len(got) != 1 || got[0] != "Test Industries" {
		t.Errorf("expected trimmed name in history, got %v", got)
	}
}

func TestLookup_EmptyQuery(t *testing.T) {
	adv, hist := newTestAdvisor(&collector.MockFetcher{}, newMemStore())
	if _, err := adv.Lookup(hist.NewSession(), "   "); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestLookup_UnsupportedExchange(t *testing.T) {
	fetcher := &collector.MockFetcher{Matches: []model.SearchMatch{
		{Symbol: "AAPL", Exchange: "NASDAQ"},
	}}
	adv, hist := newTestAdvisor(fetcher, newMemStore())
	sess := hist.NewSession()

	if _, err := adv.Lookup(sess, "apple"); !errors.Is(err, ErrUnsupportedExchange) {
		t.Errorf("expected ErrUnsupportedExchange, got %v", err)
	}
	if got := adv.SearchHistory(sess); len(got) != 0 {
		t.Errorf("unresolved lookups must not enter history, got %v", got)
	}
}

func TestLookup_NotFound(t *testing.T) {
	adv, hist := newTestAdvisor(&collector.MockFetcher{SearchErr: errors.New("down")}, newMemStore())
	if _, err := adv.Lookup(hist.NewSession(), "whatever"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on search failure, got %v", err)
	}
}

func TestLookup_DataUnavailable(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Matches:     indianMatch(),
		MonthlyData: []model.OHLCV{},
	}
	adv, hist := newTestAdvisor(fetcher, newMemStore())
	sess := hist.NewSession()

	if _, err := adv.Lookup(sess, "Test Industries"); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
	// Resolution succeeded, so the name is recorded even though data failed.
	if got := adv.SearchHistory(sess); len(got) != 1 {
		t.Errorf("expected history entry after successful resolution, got %v", got)
	}
}

func TestProject_InvalidInputDistinct(t *testing.T) {
	fetcher := &collector.MockFetcher{Matches: indianMatch()}
	adv, hist := newTestAdvisor(fetcher, newMemStore())
	sess := hist.NewSession()

	res, _, err := adv.Project(sess, "Test Industries", "-5", "3")
	if !errors.Is(err, projector.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if errors.Is(err, ErrDataUnavailable) {
		t.Error("invalid input must not be reported as a data failure")
	}
	if res == nil {
		t.Error("expected the lookup result even when projection input is invalid")
	}
}

func TestProject_Success(t *testing.T) {
	fetcher := &collector.MockFetcher{Matches: indianMatch()}
	st := newMemStore()
	adv, hist := newTestAdvisor(fetcher, st)

	res, proj, err := adv.Project(hist.NewSession(), "Test Industries", "10000", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proj.Years != 5 || proj.Amount != 10000 {
		t.Errorf("unexpected projection inputs: %+v", proj)
	}
	if proj.SharePrice != res.Metrics.LatestPrice {
		t.Errorf("projection must use the freshly fetched price, got %v vs %v",
			proj.SharePrice, res.Metrics.LatestPrice)
	}
	if _, ok := st.snaps["TEST.NS"]; !ok {
		t.Error("projection path must persist the snapshot too")
	}
}
