package store

import (
	"errors"

	"StockAdvisor/internal/model"
)

// ErrNotFound is returned by Get when no snapshot exists for the ticker.
var ErrNotFound = errors.New("snapshot not found")

// Store persists the latest computed snapshot per ticker, last-write-wins.
type Store interface {
	Upsert(snap *model.Snapshot) error
	Get(ticker string) (*model.Snapshot, error)
	ListTickers() ([]string, error)
	Close() error
}
