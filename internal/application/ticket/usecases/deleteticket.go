package usecases

import (
	"context"

	"flyadmin/internal/domain/ticket"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID string
}

type DeleteTicketResult struct {
	TicketID string
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, log logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	// Removing an absent id is a no-op by contract, so there is no
	// existence check here.
	if err := uc.ticketRepo.Remove(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
