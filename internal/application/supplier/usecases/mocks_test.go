package usecases

import (
	"context"

	"flyadmin/internal/domain/supplier"
	"flyadmin/internal/shared/logger"
)

type mockSupplierRepository struct {
	ListFunc   func(ctx context.Context) ([]*supplier.Supplier, error)
	AppendFunc func(ctx context.Context, s *supplier.Supplier) error
}

func (m *mockSupplierRepository) List(ctx context.Context) ([]*supplier.Supplier, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockSupplierRepository) Append(ctx context.Context, s *supplier.Supplier) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, s)
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
