package ticket

import (
	"sort"
	"time"
)

const (
	// DefaultUpcomingLimit bounds the upcoming-flights list on the dashboard.
	DefaultUpcomingLimit = 5

	// DefaultReminderWindow is how far ahead of departure a ticket becomes
	// due for a reminder.
	DefaultReminderWindow = 24 * time.Hour
)

// Totals holds the aggregate financials over the ticket collection.
type Totals struct {
	TotalTickets  int
	TotalSales    float64
	TotalPurchase float64
	TotalProfit   float64
	DummyCount    int
}

// ComputeTotals recomputes the aggregates from scratch on every call; there
// is no cached state to invalidate.
func ComputeTotals(tickets []*Ticket) Totals {
	totals := Totals{TotalTickets: len(tickets)}
	for _, t := range tickets {
		totals.TotalSales += t.SalesPrice()
		totals.TotalPurchase += t.PurchasePrice()
		if t.DummyTicket() {
			totals.DummyCount++
		}
	}
	totals.TotalProfit = totals.TotalSales - totals.TotalPurchase
	return totals
}

// Upcoming returns at most limit tickets departing strictly after now,
// ascending by flight date. Ties keep their collection order. Tickets with
// missing or malformed dates are excluded.
func Upcoming(tickets []*Ticket, now time.Time, limit int) []*Ticket {
	upcoming := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		departure, ok := t.FlightDateTime()
		if ok && departure.After(now) {
			upcoming = append(upcoming, t)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		di, _ := upcoming[i].FlightDateTime()
		dj, _ := upcoming[j].FlightDateTime()
		return di.Before(dj)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// Reminders returns tickets departing within (0, window] of now that have
// not had a reminder sent. The query is read-only: nothing here, or anywhere
// else in the engine, flips reminderSent.
func Reminders(tickets []*Ticket, now time.Time, window time.Duration) []*Ticket {
	due := make([]*Ticket, 0)
	for _, t := range tickets {
		if t.ReminderSent() {
			continue
		}
		departure, ok := t.FlightDateTime()
		if !ok {
			continue
		}
		until := departure.Sub(now)
		if until > 0 && until <= window {
			due = append(due, t)
		}
	}
	return due
}
