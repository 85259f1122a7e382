package usecases

import (
	"context"

	"flyadmin/internal/domain/customer"
	"flyadmin/internal/shared/logger"
)

type mockCustomerRepository struct {
	ListFunc   func(ctx context.Context) ([]*customer.Customer, error)
	AppendFunc func(ctx context.Context, c *customer.Customer) error
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCustomerRepository) Append(ctx context.Context, c *customer.Customer) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, c)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
