package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"StockAdvisor/internal/analyzer"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/store"
)

// Scheduler periodically refreshes the stored snapshot of every ticker that
// has been looked up before.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Store    store.Store
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, an *analyzer.Analyzer, st store.Store) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: an,
		Store:    st,
		Ctx:      ctx,
	}
}

// Register registers the refresh task on the given cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (for manual trigger).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	tickers, err := s.Store.ListTickers()
	if err != nil {
		log.Printf("[ERROR] refresh: list tickers: %v", err)
		return
	}
	if len(tickers) == 0 {
		log.Println("[INFO] refresh: no stored tickers")
		return
	}
	log.Printf("[INFO] refreshing %d stored tickers", len(tickers))

	for _, ticker := range tickers {
		select {
		case <-s.Ctx.Done():
			log.Println("[INFO] refresh cancelled")
			return
		default:
		}
		profile, metrics, err := s.Analyzer.Analyze(ticker)
		if err != nil {
			log.Printf("[WARN] refresh %s: %v", ticker, err)
			continue
		}
		snap := &model.Snapshot{
			Ticker:    ticker,
			Profile:   *profile,
			Metrics:   *metrics,
			FetchedAt: time.Now().UTC(),
		}
		if err := s.Store.Upsert(snap); err != nil {
			log.Printf("[WARN] refresh store %s: %v", ticker, err)
			continue
		}
		log.Printf("[INFO] refreshed %s: price %.2f, %s", ticker, metrics.LatestPrice, metrics.Recommendation)
	}
}
