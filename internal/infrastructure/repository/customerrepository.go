package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"flyadmin/internal/domain/customer"
	"flyadmin/internal/infrastructure/kvstore"
	"flyadmin/internal/shared/logger"
)

type customerRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
	CreatedAt int64  `json:"createdAt"`
}

// CustomerRepository persists the customer collection as one JSON array.
// The collection is append-only; there is no update or delete path.
type CustomerRepository struct {
	store  kvstore.Store
	mu     sync.Mutex
	logger logger.Interface
}

func NewCustomerRepository(store kvstore.Store, log logger.Interface) *CustomerRepository {
	return &CustomerRepository{
		store:  store,
		logger: log.Named("customer_repository"),
	}
}

func (r *CustomerRepository) load(ctx context.Context) ([]customerRecord, error) {
	blob, ok, err := r.store.Get(ctx, kvstore.KeyCustomers)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer collection: %w", err)
	}
	if !ok {
		return []customerRecord{}, nil
	}

	var records []customerRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		r.logger.Warnw("customer collection blob is corrupt, treating as empty", "error", err)
		return []customerRecord{}, nil
	}
	if records == nil {
		records = []customerRecord{}
	}
	return records, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(records))
	for _, rec := range records {
		customers = append(customers, customer.ReconstructCustomer(
			rec.ID, rec.Name, rec.Phone, rec.Email, rec.Notes, time.UnixMilli(rec.CreatedAt),
		))
	}
	return customers, nil
}

func (r *CustomerRepository) Append(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	records = append(records, customerRecord{
		ID:        c.ID(),
		Name:      c.Name(),
		Phone:     c.Phone(),
		Email:     c.Email(),
		Notes:     c.Notes(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	})

	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode customer collection: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyCustomers, blob); err != nil {
		return fmt.Errorf("failed to persist customer collection: %w", err)
	}
	return nil
}
