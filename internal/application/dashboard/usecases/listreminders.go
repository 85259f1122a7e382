package usecases

import (
	"context"
	"time"

	ticketdto "flyadmin/internal/application/ticket/dto"
	"flyadmin/internal/domain/ticket"
	"flyadmin/internal/shared/logger"
)

type ListRemindersQuery struct {
	// WindowHours defaults to 24 when zero or negative.
	WindowHours int
}

type ListRemindersResult struct {
	Reminders []ticketdto.TicketDTO
}

// ListRemindersUseCase is a pure query: it never marks a reminder as sent.
// Flipping reminder_sent is an external responsibility with no code path
// here.
type ListRemindersUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
	now        func() time.Time
}

func NewListRemindersUseCase(ticketRepo ticket.Repository, log logger.Interface) *ListRemindersUseCase {
	return &ListRemindersUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
		now:        time.Now,
	}
}

func (uc *ListRemindersUseCase) Execute(ctx context.Context, query ListRemindersQuery) (*ListRemindersResult, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets for reminders", "error", err)
		return nil, err
	}

	window := ticket.DefaultReminderWindow
	if query.WindowHours > 0 {
		window = time.Duration(query.WindowHours) * time.Hour
	}

	due := ticket.Reminders(tickets, uc.now(), window)

	items := make([]ticketdto.TicketDTO, 0, len(due))
	for _, t := range due {
		items = append(items, ticketdto.FromEntity(t))
	}

	return &ListRemindersResult{Reminders: items}, nil
}
