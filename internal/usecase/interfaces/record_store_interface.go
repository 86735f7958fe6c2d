package interfaces

import (
	"context"
	"techflow_billing/internal/domain/entities"
)

// IRecordStore keeps named JSON records (invoice and customer archives).
//
// Load reports found=false, with no error, for a key that was never saved.
type IRecordStore interface {
	Save(ctx context.Context, key string, record entities.Record) error
	Load(ctx context.Context, key string) (record entities.Record, found bool, err error)
}

// ICounterStore keeps monotonically increasing named counters.
//
// Peek returns the current value (0 when never incremented). Increment adds one
// atomically and returns the new value.
type ICounterStore interface {
	Peek(ctx context.Context, name string) (int64, error)
	Increment(ctx context.Context, name string) (int64, error)
}
