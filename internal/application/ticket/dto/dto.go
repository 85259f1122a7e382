package dto

import "flyadmin/internal/domain/ticket"

// UnresolvedName is rendered when a ticket's customer or supplier reference
// does not resolve. Dangling references are expected, not errors.
const UnresolvedName = "N/A"

type TicketDTO struct {
	ID            string   `json:"id"`
	Passengers    []string `json:"passengers"`
	Segments      string   `json:"segments"`
	FlightDate    string   `json:"flight_date"`
	FlightTime    string   `json:"flight_time"`
	PNR           string   `json:"pnr"`
	ETicketNo     string   `json:"e_ticket_no"`
	IssuedDate    string   `json:"issued_date"`
	Airline       string   `json:"airline"`
	CustomerID    string   `json:"customer_id"`
	CustomerName  string   `json:"customer_name,omitempty"`
	SupplierID    string   `json:"supplier_id"`
	SupplierName  string   `json:"supplier_name,omitempty"`
	SalesPrice    float64  `json:"sales_price"`
	PurchasePrice float64  `json:"purchase_price"`
	Profit        float64  `json:"profit"`
	DummyTicket   bool     `json:"dummy_ticket"`
	CreatedAt     int64    `json:"created_at"`
	ReminderSent  bool     `json:"reminder_sent"`
}

func FromEntity(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
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
		SalesPrice:    t.SalesPrice(),
		PurchasePrice: t.PurchasePrice(),
		Profit:        t.ProfitValue(),
		DummyTicket:   t.DummyTicket(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		ReminderSent:  t.ReminderSent(),
	}
}
