package ticket

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used by flightDate and issuedDate.
const DateLayout = "2006-01-02"

// TimeLayout is the clock format used by flightTime.
const TimeLayout = "15:04"

// Profit is the single source of truth for per-ticket profit. It is applied
// at construction and on every price change, never stored independently.
func Profit(salesPrice, purchasePrice float64) float64 {
	return salesPrice - purchasePrice
}

// Attrs carries the full field set of a ticket. Used for both creation and
// reconstruction from the persisted collection.
type Attrs struct {
	ID            string
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
	CreatedAt     time.Time
	ReminderSent  bool
}

// Ticket is a recorded flight ticket. CustomerID and SupplierID are weak
// references: they are never validated for existence and a dangling id is
// not an error.
type Ticket struct {
	id            string
	passengers    []string
	segments      string
	flightDate    string
	flightTime    string
	pnr           string
	eTicketNo     string
	issuedDate    string
	airline       string
	customerID    string
	supplierID    string
	salesPrice    float64
	purchasePrice float64
	profit        float64
	dummyTicket   bool
	createdAt     time.Time
	reminderSent  bool
}

func NewTicket(attrs Attrs) (*Ticket, error) {
	if attrs.ID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if attrs.FlightDate != "" {
		if _, err := time.Parse(DateLayout, attrs.FlightDate); err != nil {
			return nil, fmt.Errorf("invalid flight date %q: expected %s", attrs.FlightDate, DateLayout)
		}
	}
	if attrs.CreatedAt.IsZero() {
		attrs.CreatedAt = time.Now()
	}

	return reconstruct(attrs), nil
}

// ReconstructTicket rebuilds a ticket from persisted state without the
// creation-time validation. The profit invariant is still re-applied so a
// drifted stored value can never survive a load.
func ReconstructTicket(attrs Attrs) *Ticket {
	return reconstruct(attrs)
}

func reconstruct(attrs Attrs) *Ticket {
	passengers := attrs.Passengers
	if passengers == nil {
		passengers = []string{}
	}

	return &Ticket{
		id:            attrs.ID,
		passengers:    passengers,
		segments:      attrs.Segments,
		flightDate:    attrs.FlightDate,
		flightTime:    attrs.FlightTime,
		pnr:           attrs.PNR,
		eTicketNo:     attrs.ETicketNo,
		issuedDate:    attrs.IssuedDate,
		airline:       attrs.Airline,
		customerID:    attrs.CustomerID,
		supplierID:    attrs.SupplierID,
		salesPrice:    attrs.SalesPrice,
		purchasePrice: attrs.PurchasePrice,
		profit:        Profit(attrs.SalesPrice, attrs.PurchasePrice),
		dummyTicket:   attrs.DummyTicket,
		createdAt:     attrs.CreatedAt,
		reminderSent:  attrs.ReminderSent,
	}
}

// UpdatePrices replaces both prices and recomputes profit before the ticket
// can reach persistence.
func (t *Ticket) UpdatePrices(salesPrice, purchasePrice float64) {
	t.salesPrice = salesPrice
	t.purchasePrice = purchasePrice
	t.profit = Profit(salesPrice, purchasePrice)
}

// FlightDateTime parses the stored calendar date. The boolean is false when
// the date is empty or malformed; such tickets are excluded from date-based
// queries rather than treated as errors.
func (t *Ticket) FlightDateTime() (time.Time, bool) {
	if t.flightDate == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(DateLayout, t.flightDate)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func (t *Ticket) ID() string { return t.id }
func (t *Ticket) Passengers() []string { return t.passengers }
func (t *Ticket) Segments() string { return t.segments }
func (t *Ticket) FlightDate() string { return t.flightDate }
func (t *Ticket) FlightTime() string { return t.flightTime }
func (t *Ticket) PNR() string { return t.pnr }
func (t *Ticket) ETicketNo() string { return t.eTicketNo }
func (t *Ticket) IssuedDate() string { return t.issuedDate }
func (t *Ticket) Airline() string { return t.airline }
func (t *Ticket) CustomerID() string { return t.customerID }
func (t *Ticket) SupplierID() string { return t.supplierID }
func (t *Ticket) SalesPrice() float64 { return t.salesPrice }
func (t *Ticket) PurchasePrice() float64 { return t.purchasePrice }
func (t *Ticket) ProfitValue() float64 { return t.profit }
func (t *Ticket) DummyTicket() bool { return t.dummyTicket }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) ReminderSent() bool { return t.reminderSent }
