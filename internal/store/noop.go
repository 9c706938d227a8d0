package store

import "StockAdvisor/internal/model"

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Upsert(_ *model.Snapshot) error          { return nil }
func (n *NoopStore) Get(_ string) (*model.Snapshot, error)   { return nil, ErrNotFound }
func (n *NoopStore) ListTickers() ([]string, error)          { return nil, nil }
func (n *NoopStore) Close() error                            { return nil }
