package usecases

import (
	"context"
	"time"

	"flyadmin/internal/domain/ticket"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/id"
	"flyadmin/internal/shared/logger"
)

type CreateTicketCommand struct {
	Passengers    []string
	Segments      string
	FlightDate    string
	FlightTime    string
	PNR           string
	ETicketNo     string
	IssuedDate    string
	Airline       string
	CustomerID    string
	SupplierID    string
	SalesPrice    float64
	PurchasePrice float64
	DummyTicket   bool
}

type CreateTicketResult struct {
	TicketID  string
	Profit    float64
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.Repository, log logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	newTicket, err := ticket.NewTicket(ticket.Attrs{
		ID:            id.New(),
		Passengers:    cmd.Passengers,
		Segments:      cmd.Segments,
		FlightDate:    cmd.FlightDate,
		FlightTime:    cmd.FlightTime,
		PNR:           cmd.PNR,
		ETicketNo:     cmd.ETicketNo,
		IssuedDate:    cmd.IssuedDate,
		Airline:       cmd.Airline,
		CustomerID:    cmd.CustomerID,
		SupplierID:    cmd.SupplierID,
		SalesPrice:    cmd.SalesPrice,
		PurchasePrice: cmd.PurchasePrice,
		DummyTicket:   cmd.DummyTicket,
	})
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Upsert(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "pnr", newTicket.PNR())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Profit:    newTicket.ProfitValue(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
