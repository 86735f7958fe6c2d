package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase/interfaces"
	"time"
)

// ErrStorageUnavailable wraps record/counter store failures surfaced to callers.
var ErrStorageUnavailable = errors.New("storage unavailable")

// recordArchive keeps a capped, oldest-first list of T under a single record key.
// Callers serialize append/replace themselves.
type recordArchive[T any] struct {
	store interfaces.IRecordStore
	key   string
	limit int
	now   func() time.Time
}

func (a recordArchive[T]) load(ctx context.Context) ([]T, error) {
	if a.store == nil {
		return nil, fmt.Errorf("%w: record store not configured", ErrStorageUnavailable)
	}
	rec, found, err := a.store.Load(ctx, a.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if !found || len(rec.Payload) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(rec.Payload, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrStorageUnavailable, a.key, err)
	}
	return items, nil
}

// replace writes items, dropping the oldest beyond the limit.
func (a recordArchive[T]) replace(ctx context.Context, items []T) error {
	if a.store == nil {
		return fmt.Errorf("%w: record store not configured", ErrStorageUnavailable)
	}
	if a.limit > 0 && len(items) > a.limit {
		items = items[len(items)-a.limit:]
	}
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	rec := entities.Record{Key: a.key, Payload: payload, UpdatedAt: a.now().UTC()}
	if err := a.store.Save(ctx, a.key, rec); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (a recordArchive[T]) append(ctx context.Context, item T) error {
	items, err := a.load(ctx)
	if err != nil {
		return err
	}
	return a.replace(ctx, append(items, item))
}
