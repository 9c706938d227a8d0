package store

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockAdvisor/internal/model"
)

// SQLiteStore persists snapshots to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS snapshots (
		ticker           TEXT PRIMARY KEY,
		name             TEXT,
		sector           TEXT,
		industry         TEXT,
		ceo              TEXT,
		website          TEXT,
		description      TEXT,
		market_cap       REAL,
		pe_ratio         REAL,
		eps              REAL,
		dividend_yield   REAL,
		high_52w         REAL,
		low_52w          REAL,
		beta             REAL,
		avg_volume       REAL,
		latest_price     REAL,
		previous_close   REAL,
		price_change     REAL,
		price_change_pct REAL,
		high_price       REAL,
		low_price        REAL,
		volume           REAL,
		volatility       REAL,
		short_term_ma    REAL,
		long_term_ma     REAL,
		yearly_change    REAL,
		recommendation   TEXT,
		advice           TEXT,
		health           TEXT,
		fetched_at       INTEGER NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("exec %q: %w", stmt[:40], err)
	}
	return nil
}

// Upsert stores the snapshot under its ticker key, replacing any previous
// row. Tickers are keyed uppercase.
func (s *SQLiteStore) Upsert(snap *model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := snap.Profile
	m := snap.Metrics
	_, err := s.db.Exec(`INSERT OR REPLACE INTO snapshots
		(ticker, name, sector, industry, ceo, website, description,
		 market_cap, pe_ratio, eps, dividend_yield, high_52w, low_52w, beta, avg_volume,
		 latest_price, previous_close, price_change, price_change_pct,
		 high_price, low_price, volume, volatility, short_term_ma, long_term_ma,
		 yearly_change, recommendation, advice, health, fetched_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		strings.ToUpper(snap.Ticker), p.Name, p.Sector, p.Industry, p.CEO, p.Website, p.Description,
		p.MarketCap, p.PERatio, p.EPS, p.DividendYield, p.FiftyTwoWeekHigh, p.FiftyTwoWeekLow, p.Beta, p.AvgVolume,
		m.LatestPrice, m.PreviousClose, m.PriceChange, m.PriceChangePct,
		m.HighPrice, m.LowPrice, m.Volume, m.Volatility, m.ShortTermMA, m.LongTermMA,
		m.YearlyChange, string(m.Recommendation), m.Advice, string(m.Health),
		snap.FetchedAt.Unix(),
	)
	return err
}

// Get loads the stored snapshot for a ticker, or ErrNotFound.
func (s *SQLiteStore) Get(ticker string) (*model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`SELECT
		ticker, name, sector, industry, ceo, website, description,
		market_cap, pe_ratio, eps, dividend_yield, high_52w, low_52w, beta, avg_volume,
		latest_price, previous_close, price_change, price_change_pct,
		high_price, low_price, volume, volatility, short_term_ma, long_term_ma,
		yearly_change, recommendation, advice, health, fetched_at
		FROM snapshots WHERE ticker = ?`, strings.ToUpper(ticker))

	var snap model.Snapshot
	var marketCap, peRatio, eps, divYield, high52, low52, beta, avgVol sql.NullFloat64
	var volatility, shortMA, longMA sql.NullFloat64
	var rec, health string
	var fetchedAt int64
	err := row.Scan(
		&snap.Ticker, &snap.Profile.Name, &snap.Profile.Sector, &snap.Profile.Industry,
		&snap.Profile.CEO, &snap.Profile.Website, &snap.Profile.Description,
		&marketCap, &peRatio, &eps, &divYield, &high52, &low52, &beta, &avgVol,
		&snap.Metrics.LatestPrice, &snap.Metrics.PreviousClose,
		&snap.Metrics.PriceChange, &snap.Metrics.PriceChangePct,
		&snap.Metrics.HighPrice, &snap.Metrics.LowPrice, &snap.Metrics.Volume,
		&volatility, &shortMA, &longMA,
		&snap.Metrics.YearlyChange, &rec, &snap.Metrics.Advice, &health, &fetchedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}

	snap.Profile.MarketCap = nullable(marketCap)
	snap.Profile.PERatio = nullable(peRatio)
	snap.Profile.EPS = nullable(eps)
	snap.Profile.DividendYield = nullable(divYield)
	snap.Profile.FiftyTwoWeekHigh = nullable(high52)
	snap.Profile.FiftyTwoWeekLow = nullable(low52)
	snap.Profile.Beta = nullable(beta)
	snap.Profile.AvgVolume = nullable(avgVol)
	snap.Metrics.Volatility = nullable(volatility)
	snap.Metrics.ShortTermMA = nullable(shortMA)
	snap.Metrics.LongTermMA = nullable(longMA)
	snap.Metrics.Recommendation = model.Recommendation(rec)
	snap.Metrics.Health = model.Health(health)
	snap.FetchedAt = time.Unix(fetchedAt, 0)
	return &snap, nil
}

// ListTickers returns all stored ticker keys.
func (s *SQLiteStore) ListTickers() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT ticker FROM snapshots ORDER BY ticker`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickers []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tickers = append(tickers, t)
	}
	return tickers, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
