package usecases

import (
	"context"
	"time"

	"flyadmin/internal/domain/supplier"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/id"
	"flyadmin/internal/shared/logger"
)

type CreateSupplierCommand struct {
	Name  string
	Phone string
	Email string
	Notes string
}

type CreateSupplierResult struct {
	SupplierID string
	CreatedAt  time.Time
}

type CreateSupplierUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewCreateSupplierUseCase(supplierRepo supplier.Repository, log logger.Interface) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{
		supplierRepo: supplierRepo,
		logger:       log,
	}
}

func (uc *CreateSupplierUseCase) Execute(ctx context.Context, cmd CreateSupplierCommand) (*CreateSupplierResult, error) {
	newSupplier, err := supplier.NewSupplier(id.New(), cmd.Name, cmd.Phone, cmd.Email, cmd.Notes)
	if err != nil {
		uc.logger.Warnw("invalid create supplier command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.supplierRepo.Append(ctx, newSupplier); err != nil {
		uc.logger.Errorw("failed to save supplier", "error", err)
		return nil, err
	}

	uc.logger.Infow("supplier created", "supplier_id", newSupplier.ID())

	return &CreateSupplierResult{
		SupplierID: newSupplier.ID(),
		CreatedAt:  newSupplier.CreatedAt(),
	}, nil
}
