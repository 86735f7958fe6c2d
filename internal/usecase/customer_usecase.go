package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/domain/validation"
	"techflow_billing/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

const customerArchiveKey = "customers"

var (
	ErrCustomerInvalid   = errors.New("customer is not valid")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// ICustomerUseCase keeps the saved-customer list used to prefill invoices.
// Customers are unique by phone number.
type ICustomerUseCase interface {
	Save(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	archive recordArchive[entities.Customer]
	now     func() time.Time
	mu      sync.Mutex
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(records interfaces.IRecordStore, limit int) *CustomerUseCase {
	u := &CustomerUseCase{now: time.Now}
	u.archive = recordArchive[entities.Customer]{
		store: records,
		key:   customerArchiveKey,
		limit: limit,
		now:   func() time.Time { return u.now() },
	}
	return u
}

// Save inserts a customer, or updates the one with the same phone number.
func (u *CustomerUseCase) Save(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c = trimCustomer(c)
	if errs := validation.Struct(c); len(errs) > 0 {
		return entities.Customer{}, fmt.Errorf("%w: %w", ErrCustomerInvalid, errs)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.archive.load(ctx)
	if err != nil {
		return entities.Customer{}, err
	}

	now := u.now().UTC()
	phone := validation.NormalizePhone(c.Phone)
	idx := -1
	for i, existing := range items {
		if validation.NormalizePhone(existing.Phone) == phone {
			idx = i
			break
		}
	}

	if idx >= 0 {
		c.ID = items[idx].ID
		c.CreatedAt = items[idx].CreatedAt
		c.UpdatedAt = now
		// Move to the end so eviction drops the least recently saved.
		items = append(append(items[:idx:idx], items[idx+1:]...), c)
		log.Printf("[customer][usecase] updated id=%s", c.ID)
	} else {
		c.ID = "CUST_" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
		c.CreatedAt = now
		c.UpdatedAt = now
		items = append(items, c)
		log.Printf("[customer][usecase] created id=%s", c.ID)
	}

	if err := u.archive.replace(ctx, items); err != nil {
		log.Printf("[customer][usecase] save failed id=%s err=%v", c.ID, err)
		return entities.Customer{}, err
	}
	return c, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	items, err := u.archive.load(ctx)
	if err != nil {
		return entities.Customer{}, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Customer{}, ErrCustomerNotFound
}

// List is sorted by name, case-insensitively.
func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	items, err := u.archive.load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Customer{}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.archive.load(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.Customer, 0, len(items))
	for _, c := range items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(items) {
		return ErrCustomerNotFound
	}
	if err := u.archive.replace(ctx, kept); err != nil {
		return err
	}
	log.Printf("[customer][usecase] deleted id=%s", id)
	return nil
}

func trimCustomer(c entities.Customer) entities.Customer {
	c.Name = strings.TrimSpace(c.Name)
	c.Company = strings.TrimSpace(c.Company)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	return c
}
