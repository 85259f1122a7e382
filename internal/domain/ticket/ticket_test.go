package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket_ComputesProfit(t *testing.T) {
	tests := []struct {
		name          string
		salesPrice    float64
		purchasePrice float64
		wantProfit    float64
	}{
		{name: "positive profit", salesPrice: 150000, purchasePrice: 120000, wantProfit: 30000},
		{name: "negative profit", salesPrice: 90000, purchasePrice: 120000, wantProfit: -30000},
		{name: "zero prices", salesPrice: 0, purchasePrice: 0, wantProfit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tkt, err := NewTicket(Attrs{
				ID:            "tkt-1",
				FlightDate:    "2026-09-15",
				SalesPrice:    tt.salesPrice,
				PurchasePrice: tt.purchasePrice,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantProfit, tkt.ProfitValue())
		})
	}
}

func TestNewTicket_Validation(t *testing.T) {
	_, err := NewTicket(Attrs{FlightDate: "2026-09-15"})
	assert.Error(t, err, "missing ID must be rejected")

	_, err = NewTicket(Attrs{ID: "tkt-1", FlightDate: "15/09/2026"})
	assert.Error(t, err, "malformed flight date must be rejected")

	tkt, err := NewTicket(Attrs{ID: "tkt-1"})
	require.NoError(t, err, "empty flight date is allowed")
	assert.False(t, tkt.CreatedAt().IsZero())
	assert.NotNil(t, tkt.Passengers())
}

func TestUpdatePrices_RecomputesProfit(t *testing.T) {
	tkt, err := NewTicket(Attrs{
		ID:            "tkt-1",
		SalesPrice:    100,
		PurchasePrice: 60,
	})
	require.NoError(t, err)
	require.Equal(t, 40.0, tkt.ProfitValue())

	tkt.UpdatePrices(80, 100)
	assert.Equal(t, 80.0, tkt.SalesPrice())
	assert.Equal(t, 100.0, tkt.PurchasePrice())
	assert.Equal(t, -20.0, tkt.ProfitValue())
}

func TestReconstructTicket_ReappliesProfitInvariant(t *testing.T) {
	// A drifted stored profit value must not survive a load.
	tkt := ReconstructTicket(Attrs{
		ID:            "tkt-1",
		SalesPrice:    500,
		PurchasePrice: 300,
		CreatedAt:     time.UnixMilli(1700000000000),
	})
	assert.Equal(t, 200.0, tkt.ProfitValue())
}

func TestFlightDateTime(t *testing.T) {
	tkt := ReconstructTicket(Attrs{ID: "tkt-1", FlightDate: "2026-09-15"})
	departure, ok := tkt.FlightDateTime()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), departure)

	tkt = ReconstructTicket(Attrs{ID: "tkt-2", FlightDate: "not-a-date"})
	_, ok = tkt.FlightDateTime()
	assert.False(t, ok)

	tkt = ReconstructTicket(Attrs{ID: "tkt-3"})
	_, ok = tkt.FlightDateTime()
	assert.False(t, ok)
}
