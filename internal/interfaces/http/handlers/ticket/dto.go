package ticket

import "flyadmin/internal/application/ticket/usecases"

type TicketRequest struct {
	Passengers    []string `json:"passengers"`
	Segments      string   `json:"segments"`
	FlightDate    string   `json:"flight_date" binding:"required"`
	FlightTime    string   `json:"flight_time"`
	PNR           string   `json:"pnr" binding:"required"`
	ETicketNo     string   `json:"e_ticket_no"`
	IssuedDate    string   `json:"issued_date"`
	Airline       string   `json:"airline"`
	CustomerID    string   `json:"customer_id"`
	SupplierID    string   `json:"supplier_id"`
	SalesPrice    float64  `json:"sales_price"`
	PurchasePrice float64  `json:"purchase_price"`
	DummyTicket   bool     `json:"dummy_ticket"`
}

func (r TicketRequest) ToCreateCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Passengers:    r.Passengers,
		Segments:      r.Segments,
		FlightDate:    r.FlightDate,
		FlightTime:    r.FlightTime,
		PNR:           r.PNR,
		ETicketNo:     r.ETicketNo,
		IssuedDate:    r.IssuedDate,
		Airline:       r.Airline,
		CustomerID:    r.CustomerID,
		SupplierID:    r.SupplierID,
		SalesPrice:    r.SalesPrice,
		PurchasePrice: r.PurchasePrice,
		DummyTicket:   r.DummyTicket,
	}
}

func (r TicketRequest) ToUpdateCommand(ticketID string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:      ticketID,
		Passengers:    r.Passengers,
		Segments:      r.Segments,
		FlightDate:    r.FlightDate,
		FlightTime:    r.FlightTime,
		PNR:           r.PNR,
		ETicketNo:     r.ETicketNo,
		IssuedDate:    r.IssuedDate,
		Airline:       r.Airline,
		CustomerID:    r.CustomerID,
		SupplierID:    r.SupplierID,
		SalesPrice:    r.SalesPrice,
		PurchasePrice: r.PurchasePrice,
		DummyTicket:   r.DummyTicket,
	}
}

// ExtractRequest is the JSON variant of the extraction endpoint; the
// multipart variant sends the file under the "document" form field instead.
type ExtractRequest struct {
	DocumentBase64 string `json:"document_base64" binding:"required"`
	MimeType       string `json:"mime_type"`
}
