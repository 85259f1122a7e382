package ticket

import (
	"context"

	"flyadmin/internal/application/ticket/usecases"
)

type mockCreateTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

func (m *mockCreateTicketExecutor) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockUpdateTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*usecases.UpdateTicketResult, error)
}

func (m *mockUpdateTicketExecutor) Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*usecases.UpdateTicketResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockDeleteTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error)
}

func (m *mockDeleteTicketExecutor) Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockListTicketsExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

func (m *mockListTicketsExecutor) Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockExtractTicketDataExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.ExtractTicketDataCommand) (*usecases.ExtractTicketDataResult, error)
}

func (m *mockExtractTicketDataExecutor) Execute(ctx context.Context, cmd usecases.ExtractTicketDataCommand) (*usecases.ExtractTicketDataResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}
