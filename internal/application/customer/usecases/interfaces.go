package usecases

import "context"

type CreateCustomerExecutor interface {
	Execute(ctx context.Context, cmd CreateCustomerCommand) (*CreateCustomerResult, error)
}

type ListCustomersExecutor interface {
	Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error)
}
