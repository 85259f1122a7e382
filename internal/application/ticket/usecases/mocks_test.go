package usecases

import (
	"context"

	"flyadmin/internal/domain/customer"
	"flyadmin/internal/domain/supplier"
	"flyadmin/internal/domain/ticket"
	"flyadmin/internal/infrastructure/extraction"
	"flyadmin/internal/shared/logger"
)

type mockTicketRepository struct {
	ListFunc    func(ctx context.Context) ([]*ticket.Ticket, error)
	GetByIDFunc func(ctx context.Context, id string) (*ticket.Ticket, error)
	UpsertFunc  func(ctx context.Context, t *ticket.Ticket) error
	RemoveFunc  func(ctx context.Context, id string) error
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Upsert(ctx context.Context, t *ticket.Ticket) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Remove(ctx context.Context, id string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	return nil
}

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

type mockExtractionService struct {
	ExtractFunc func(ctx context.Context, document []byte, mimeType string) (*extraction.ExtractedTicketData, error)
}

func (m *mockExtractionService) Extract(ctx context.Context, document []byte, mimeType string) (*extraction.ExtractedTicketData, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, document, mimeType)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
