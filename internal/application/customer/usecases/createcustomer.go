package usecases

import (
	"context"
	"time"

	"flyadmin/internal/domain/customer"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/id"
	"flyadmin/internal/shared/logger"
)

type CreateCustomerCommand struct {
	Name  string
	Phone string
	Email string
	Notes string
}

type CreateCustomerResult struct {
	CustomerID string
	CreatedAt  time.Time
}

type CreateCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewCreateCustomerUseCase(customerRepo customer.Repository, log logger.Interface) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		logger:       log,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*CreateCustomerResult, error) {
	newCustomer, err := customer.NewCustomer(id.New(), cmd.Name, cmd.Phone, cmd.Email, cmd.Notes)
	if err != nil {
		uc.logger.Warnw("invalid create customer command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Append(ctx, newCustomer); err != nil {
		uc.logger.Errorw("failed to save customer", "error", err)
		return nil, err
	}

	uc.logger.Infow("customer created", "customer_id", newCustomer.ID())

	return &CreateCustomerResult{
		CustomerID: newCustomer.ID(),
		CreatedAt:  newCustomer.CreatedAt(),
	}, nil
}
