package usecases

import (
	"context"
	"time"

	ticketdto "flyadmin/internal/application/ticket/dto"
	"flyadmin/internal/domain/customer"
	"flyadmin/internal/domain/ticket"
	"flyadmin/internal/shared/logger"
)

type GetDashboardStatsQuery struct{}

type DashboardStatsResult struct {
	TotalTickets   int                   `json:"total_tickets"`
	TotalCustomers int                   `json:"total_customers"`
	TotalSales     float64               `json:"total_sales"`
	TotalPurchase  float64               `json:"total_purchase"`
	TotalProfit    float64               `json:"total_profit"`
	DummyTickets   int                   `json:"dummy_tickets"`
	Upcoming       []ticketdto.TicketDTO `json:"upcoming"`
}

// GetDashboardStatsUseCase recomputes the dashboard aggregates from the
// ticket collection on every call. There is no cached state.
type GetDashboardStatsUseCase struct {
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	logger       logger.Interface
	now          func() time.Time
}

func NewGetDashboardStatsUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	log logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		logger:       log,
		now:          time.Now,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, _ GetDashboardStatsQuery) (*DashboardStatsResult, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets for dashboard", "error", err)
		return nil, err
	}

	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list customers for dashboard", "error", err)
		return nil, err
	}

	totals := ticket.ComputeTotals(tickets)
	upcoming := ticket.Upcoming(tickets, uc.now(), ticket.DefaultUpcomingLimit)

	upcomingDTOs := make([]ticketdto.TicketDTO, 0, len(upcoming))
	for _, t := range upcoming {
		upcomingDTOs = append(upcomingDTOs, ticketdto.FromEntity(t))
	}

	return &DashboardStatsResult{
		TotalTickets:   totals.TotalTickets,
		TotalCustomers: len(customers),
		TotalSales:     totals.TotalSales,
		TotalPurchase:  totals.TotalPurchase,
		TotalProfit:    totals.TotalProfit,
		DummyTickets:   totals.DummyCount,
		Upcoming:       upcomingDTOs,
	}, nil
}
