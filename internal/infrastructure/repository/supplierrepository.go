package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"flyadmin/internal/domain/supplier"
	"flyadmin/internal/infrastructure/kvstore"
	"flyadmin/internal/shared/logger"
)

type supplierRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
	CreatedAt int64  `json:"createdAt"`
}

// SupplierRepository persists the supplier collection as one JSON array,
// append-only like customers.
type SupplierRepository struct {
	store  kvstore.Store
	mu     sync.Mutex
	logger logger.Interface
}

func NewSupplierRepository(store kvstore.Store, log logger.Interface) *SupplierRepository {
	return &SupplierRepository{
		store:  store,
		logger: log.Named("supplier_repository"),
	}
}

func (r *SupplierRepository) load(ctx context.Context) ([]supplierRecord, error) {
	blob, ok, err := r.store.Get(ctx, kvstore.KeySuppliers)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier collection: %w", err)
	}
	if !ok {
		return []supplierRecord{}, nil
	}

	var records []supplierRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		r.logger.Warnw("supplier collection blob is corrupt, treating as empty", "error", err)
		return []supplierRecord{}, nil
	}
	if records == nil {
		records = []supplierRecord{}
	}
	return records, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]*supplier.Supplier, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	suppliers := make([]*supplier.Supplier, 0, len(records))
	for _, rec := range records {
		suppliers = append(suppliers, supplier.ReconstructSupplier(
			rec.ID, rec.Name, rec.Phone, rec.Email, rec.Notes, time.UnixMilli(rec.CreatedAt),
		))
	}
	return suppliers, nil
}

func (r *SupplierRepository) Append(ctx context.Context, s *supplier.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	records = append(records, supplierRecord{
		ID:        s.ID(),
		Name:      s.Name(),
		Phone:     s.Phone(),
		Email:     s.Email(),
		Notes:     s.Notes(),
		CreatedAt: s.CreatedAt().UnixMilli(),
	})

	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode supplier collection: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeySuppliers, blob); err != nil {
		return fmt.Errorf("failed to persist supplier collection: %w", err)
	}
	return nil
}
