package usecases

import (
	"context"

	"flyadmin/internal/domain/supplier"
	"flyadmin/internal/shared/logger"
)

type ListSuppliersQuery struct{}

type SupplierDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
	CreatedAt int64  `json:"created_at"`
}

type ListSuppliersResult struct {
	Suppliers []SupplierDTO
}

type ListSuppliersUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewListSuppliersUseCase(supplierRepo supplier.Repository, log logger.Interface) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{
		supplierRepo: supplierRepo,
		logger:       log,
	}
}

func (uc *ListSuppliersUseCase) Execute(ctx context.Context, _ ListSuppliersQuery) (*ListSuppliersResult, error) {
	suppliers, err := uc.supplierRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list suppliers", "error", err)
		return nil, err
	}

	items := make([]SupplierDTO, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, SupplierDTO{
			ID:        s.ID(),
			Name:      s.Name(),
			Phone:     s.Phone(),
			Email:     s.Email(),
			Notes:     s.Notes(),
			CreatedAt: s.CreatedAt().UnixMilli(),
		})
	}

	return &ListSuppliersResult{Suppliers: items}, nil
}
