package usecases

import (
	"context"

	"flyadmin/internal/domain/customer"
	"flyadmin/internal/shared/logger"
)

type ListCustomersQuery struct{}

type CustomerDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
	CreatedAt int64  `json:"created_at"`
}

type ListCustomersResult struct {
	Customers []CustomerDTO
}

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, log logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
		logger:       log,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, _ ListCustomersQuery) (*ListCustomersResult, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, err
	}

	items := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		items = append(items, CustomerDTO{
			ID:        c.ID(),
			Name:      c.Name(),
			Phone:     c.Phone(),
			Email:     c.Email(),
			Notes:     c.Notes(),
			CreatedAt: c.CreatedAt().UnixMilli(),
		})
	}

	return &ListCustomersResult{Customers: items}, nil
}
