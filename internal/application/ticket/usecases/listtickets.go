package usecases

import (
	"context"

	"flyadmin/internal/application/ticket/dto"
	"flyadmin/internal/domain/customer"
	"flyadmin/internal/domain/supplier"
	"flyadmin/internal/domain/ticket"
	"flyadmin/internal/shared/logger"
)

type ListTicketsQuery struct{}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
}

// ListTicketsUseCase returns the full collection with customer and supplier
// names joined in. The references are weak: a miss renders as "N/A" instead
// of failing the listing.
type ListTicketsUseCase struct {
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	supplierRepo supplier.Repository,
	log logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		logger:       log,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, _ ListTicketsQuery) (*ListTicketsResult, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	customerNames, err := uc.customerNames(ctx)
	if err != nil {
		return nil, err
	}
	supplierNames, err := uc.supplierNames(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		item := dto.FromEntity(t)
		item.CustomerName = resolveName(customerNames, t.CustomerID())
		item.SupplierName = resolveName(supplierNames, t.SupplierID())
		items = append(items, item)
	}

	return &ListTicketsResult{Tickets: items}, nil
}

func (uc *ListTicketsUseCase) customerNames(ctx context.Context) (map[string]string, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list customers for ticket join", "error", err)
		return nil, err
	}
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID()] = c.Name()
	}
	return names, nil
}

func (uc *ListTicketsUseCase) supplierNames(ctx context.Context) (map[string]string, error) {
	suppliers, err := uc.supplierRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list suppliers for ticket join", "error", err)
		return nil, err
	}
	names := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		names[s.ID()] = s.Name()
	}
	return names, nil
}

func resolveName(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return dto.UnresolvedName
}
