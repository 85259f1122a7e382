package usecases

import "context"

type CreateSupplierExecutor interface {
	Execute(ctx context.Context, cmd CreateSupplierCommand) (*CreateSupplierResult, error)
}

type ListSuppliersExecutor interface {
	Execute(ctx context.Context, query ListSuppliersQuery) (*ListSuppliersResult, error)
}
