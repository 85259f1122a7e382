package usecases

import (
	"context"

	"flyadmin/internal/domain/ticket"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/logger"
)

// UpdateTicketCommand fully replaces the record with the given id. Creation
// time and the reminder flag are carried over from the stored record; when
// the id is absent the update degrades to a create (upsert semantics).
type UpdateTicketCommand struct {
	TicketID      string
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

type UpdateTicketResult struct {
	TicketID string
	Profit   float64
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, log logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to look up ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	attrs := ticket.Attrs{
		ID:            cmd.TicketID,
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
	}
	if existing != nil {
		attrs.CreatedAt = existing.CreatedAt()
		attrs.ReminderSent = existing.ReminderSent()
	}

	updated, err := ticket.NewTicket(attrs)
	if err != nil {
		uc.logger.Warnw("invalid update ticket command", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Upsert(ctx, updated); err != nil {
		uc.logger.Errorw("failed to save ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", updated.ID())

	return &UpdateTicketResult{
		TicketID: updated.ID(),
		Profit:   updated.ProfitValue(),
	}, nil
}
