package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"flyadmin/internal/domain/ticket"
	"flyadmin/internal/infrastructure/kvstore"
	"flyadmin/internal/shared/logger"
	"flyadmin/internal/shared/utils/jsonutil"
)

// ticketRecord is the persisted shape of a ticket inside the collection
// blob. Prices tolerate legacy string values; everything else is strict.
type ticketRecord struct {
	ID            string             `json:"id"`
	Passengers    []string           `json:"passengers"`
	Segments      string             `json:"segments"`
	FlightDate    string             `json:"flightDate"`
	FlightTime    string             `json:"flightTime"`
	PNR           string             `json:"pnr"`
	ETicketNo     string             `json:"eTicketNo"`
	IssuedDate    string             `json:"issuedDate"`
	Airline       string             `json:"airline"`
	CustomerID    string             `json:"customerId"`
	SupplierID    string             `json:"supplierId"`
	SalesPrice    jsonutil.FlexFloat `json:"salesPrice"`
	PurchasePrice jsonutil.FlexFloat `json:"purchasePrice"`
	Profit        jsonutil.FlexFloat `json:"profit"`
	DummyTicket   bool               `json:"dummyTicket"`
	CreatedAt     int64              `json:"createdAt"`
	ReminderSent  bool               `json:"reminderSent"`
}

func ticketToRecord(t *ticket.Ticket) ticketRecord {
	return ticketRecord{
		ID:            t.ID(),
		Passengers:    t.Passengers(),
		Segments:      t.Segments(),
		FlightDate:    t.FlightDate(),
		FlightTime:    t.FlightTime(),
		PNR:           t.PNR(),
		ETicketNo:     t.ETicketNo(),
		IssuedDate:    t.IssuedDate(),
		Airline:       t.Airline(),
		CustomerID:    t.CustomerID(),
		SupplierID:    t.SupplierID(),
		SalesPrice:    jsonutil.FlexFloat(t.SalesPrice()),
		PurchasePrice: jsonutil.FlexFloat(t.PurchasePrice()),
		Profit:        jsonutil.FlexFloat(t.ProfitValue()),
		DummyTicket:   t.DummyTicket(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		ReminderSent:  t.ReminderSent(),
	}
}

func ticketToEntity(rec ticketRecord) *ticket.Ticket {
	return ticket.ReconstructTicket(ticket.Attrs{
		ID:            rec.ID,
		Passengers:    rec.Passengers,
		Segments:      rec.Segments,
		FlightDate:    rec.FlightDate,
		FlightTime:    rec.FlightTime,
		PNR:           rec.PNR,
		ETicketNo:     rec.ETicketNo,
		IssuedDate:    rec.IssuedDate,
		Airline:       rec.Airline,
		CustomerID:    rec.CustomerID,
		SupplierID:    rec.SupplierID,
		SalesPrice:    rec.SalesPrice.Float64(),
		PurchasePrice: rec.PurchasePrice.Float64(),
		DummyTicket:   rec.DummyTicket,
		CreatedAt:     time.UnixMilli(rec.CreatedAt),
		ReminderSent:  rec.ReminderSent,
	})
}

// TicketRepository stores the whole ticket collection as one JSON array
// under a fixed key. Every write is a read-modify-write of the full blob,
// serialized by mu so concurrent upserts cannot lose updates.
type TicketRepository struct {
	store  kvstore.Store
	mu     sync.Mutex
	logger logger.Interface
}

func NewTicketRepository(store kvstore.Store, log logger.Interface) *TicketRepository {
	return &TicketRepository{
		store:  store,
		logger: log.Named("ticket_repository"),
	}
}

// load reads the persisted collection. A corrupt blob is not an error: it
// degrades to an empty collection with a warning, never a crash.
func (r *TicketRepository) load(ctx context.Context) ([]ticketRecord, error) {
	blob, ok, err := r.store.Get(ctx, kvstore.KeyTickets)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket collection: %w", err)
	}
	if !ok {
		return []ticketRecord{}, nil
	}

	var records []ticketRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		r.logger.Warnw("ticket collection blob is corrupt, treating as empty", "error", err)
		return []ticketRecord{}, nil
	}
	if records == nil {
		records = []ticketRecord{}
	}
	return records, nil
}

func (r *TicketRepository) persist(ctx context.Context, records []ticketRecord) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode ticket collection: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyTickets, blob); err != nil {
		return fmt.Errorf("failed to persist ticket collection: %w", err)
	}
	return nil
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, 0, len(records))
	for _, rec := range records {
		tickets = append(tickets, ticketToEntity(rec))
	}
	return tickets, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return ticketToEntity(rec), nil
		}
	}
	return nil, nil
}

func (r *TicketRepository) Upsert(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	record := ticketToRecord(t)
	replaced := false
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	return r.persist(ctx, records)
}

func (r *TicketRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}

	return r.persist(ctx, kept)
}
