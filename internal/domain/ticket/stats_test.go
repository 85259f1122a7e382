package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTicket(t *testing.T, attrs Attrs) *Ticket {
	t.Helper()
	tkt, err := NewTicket(attrs)
	require.NoError(t, err)
	return tkt
}

func TestComputeTotals(t *testing.T) {
	tickets := []*Ticket{
		mustTicket(t, Attrs{ID: "a", SalesPrice: 1000, PurchasePrice: 700}),
		mustTicket(t, Attrs{ID: "b", SalesPrice: 2500, PurchasePrice: 2600}),
		mustTicket(t, Attrs{ID: "c", SalesPrice: 0, PurchasePrice: 0, DummyTicket: true}),
	}

	totals := ComputeTotals(tickets)

	assert.Equal(t, 3, totals.TotalTickets)
	assert.Equal(t, 3500.0, totals.TotalSales)
	assert.Equal(t, 3300.0, totals.TotalPurchase)
	assert.Equal(t, 200.0, totals.TotalProfit)
	assert.Equal(t, 1, totals.DummyCount)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.Equal(t, Totals{}, totals)
}

func TestUpcoming_SortsAndExcludesPast(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(DateLayout)
	}

	tickets := []*Ticket{
		mustTicket(t, Attrs{ID: "plus3", FlightDate: day(3)}),
		mustTicket(t, Attrs{ID: "plus1", FlightDate: day(1)}),
		mustTicket(t, Attrs{ID: "minus1", FlightDate: day(-1)}),
		mustTicket(t, Attrs{ID: "plus10", FlightDate: day(10)}),
		mustTicket(t, Attrs{ID: "plus2", FlightDate: day(2)}),
		mustTicket(t, Attrs{ID: "undated"}),
	}

	upcoming := Upcoming(tickets, now, DefaultUpcomingLimit)

	ids := make([]string, 0, len(upcoming))
	for _, tkt := range upcoming {
		ids = append(ids, tkt.ID())
	}
	assert.Equal(t, []string{"plus1", "plus2", "plus3", "plus10"}, ids)
}

func TestUpcoming_Limit(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tickets := make([]*Ticket, 0, 8)
	for i := 1; i <= 8; i++ {
		tickets = append(tickets, mustTicket(t, Attrs{
			ID:         string(rune('a' + i)),
			FlightDate: now.AddDate(0, 0, i).Format(DateLayout),
		}))
	}

	assert.Len(t, Upcoming(tickets, now, 5), 5)
	assert.Len(t, Upcoming(tickets, now, 0), 8, "non-positive limit means unbounded")
}

func TestUpcoming_StableOnEqualDates(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	sameDay := now.AddDate(0, 0, 2).Format(DateLayout)

	tickets := []*Ticket{
		mustTicket(t, Attrs{ID: "first", FlightDate: sameDay}),
		mustTicket(t, Attrs{ID: "second", FlightDate: sameDay}),
		mustTicket(t, Attrs{ID: "third", FlightDate: sameDay}),
	}

	upcoming := Upcoming(tickets, now, 5)

	require.Len(t, upcoming, 3)
	assert.Equal(t, "first", upcoming[0].ID())
	assert.Equal(t, "second", upcoming[1].ID())
	assert.Equal(t, "third", upcoming[2].ID())
}

func TestReminders(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Flight dates parse to midnight, so a flight "tomorrow" is 12h away
	// from a noon clock and a flight in two days is 36h away.
	dueTomorrow := now.AddDate(0, 0, 1).Format(DateLayout)
	inTwoDays := now.AddDate(0, 0, 2).Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	tickets := []*Ticket{
		mustTicket(t, Attrs{ID: "due", FlightDate: dueTomorrow}),
		mustTicket(t, Attrs{ID: "already-sent", FlightDate: dueTomorrow, ReminderSent: true}),
		mustTicket(t, Attrs{ID: "too-far", FlightDate: inTwoDays}),
		mustTicket(t, Attrs{ID: "departed", FlightDate: yesterday}),
		mustTicket(t, Attrs{ID: "undated"}),
	}

	due := Reminders(tickets, now, DefaultReminderWindow)

	require.Len(t, due, 1)
	assert.Equal(t, "due", due[0].ID())
}

func TestReminders_WindowBoundary(t *testing.T) {
	departure := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	tkt := mustTicket(t, Attrs{ID: "boundary", FlightDate: departure.Format(DateLayout)})

	// Exactly window ahead is included; exactly at departure is not.
	assert.Len(t, Reminders([]*Ticket{tkt}, departure.Add(-DefaultReminderWindow), DefaultReminderWindow), 1)
	assert.Empty(t, Reminders([]*Ticket{tkt}, departure, DefaultReminderWindow))
}
