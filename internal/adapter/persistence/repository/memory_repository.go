package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase/interfaces"
)

// MemoryStore keeps records and counters in process memory. Everything is lost
// on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string]entities.Record
	counters map[string]int64
}

var (
	_ interfaces.IRecordStore  = (*MemoryStore)(nil)
	_ interfaces.ICounterStore = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:  map[string]entities.Record{},
		counters: map[string]int64{},
	}
}

func (s *MemoryStore) Save(_ context.Context, key string, rec entities.Record) error {
	rec.Key = key
	rec.Payload = append([]byte(nil), rec.Payload...)
	s.mu.Lock()
	s.records[key] = rec
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(_ context.Context, key string) (entities.Record, bool, error) {
	s.mu.RLock()
	rec, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return entities.Record{}, false, nil
	}
	rec.Payload = append([]byte(nil), rec.Payload...)
	return rec, true, nil
}

func (s *MemoryStore) Peek(_ context.Context, name string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[name], nil
}

func (s *MemoryStore) Increment(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	return s.counters[name], nil
}

// MemoryBillingPaymentRepository is the in-process payments table.
type MemoryBillingPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]entities.BillingPayment
}

var _ interfaces.IBillingPaymentRepository = (*MemoryBillingPaymentRepository)(nil)

func NewMemoryBillingPaymentRepository() *MemoryBillingPaymentRepository {
	return &MemoryBillingPaymentRepository{payments: map[string]entities.BillingPayment{}}
}

func (r *MemoryBillingPaymentRepository) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.payments[p.ID]; exists {
		return entities.BillingPayment{}, ErrPaymentAlreadyExists
	}
	r.payments[p.ID] = p
	return p, nil
}

func (r *MemoryBillingPaymentRepository) GetByID(_ context.Context, id string) (entities.BillingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}

// ListByInvoiceNumber returns payments oldest first.
func (r *MemoryBillingPaymentRepository) ListByInvoiceNumber(_ context.Context, invoiceNumber string) ([]entities.BillingPayment, error) {
	r.mu.RLock()
	out := make([]entities.BillingPayment, 0)
	for _, p := range r.payments {
		if strings.EqualFold(p.InvoiceNumber, invoiceNumber) {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
