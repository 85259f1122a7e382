package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyadmin/internal/application/dashboard/usecases"
	ticketdto "flyadmin/internal/application/ticket/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockGetStatsExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetDashboardStatsQuery) (*usecases.DashboardStatsResult, error)
}

func (m *mockGetStatsExecutor) Execute(ctx context.Context, query usecases.GetDashboardStatsQuery) (*usecases.DashboardStatsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockListRemindersExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListRemindersQuery) (*usecases.ListRemindersResult, error)
}

func (m *mockListRemindersExecutor) Execute(ctx context.Context, query usecases.ListRemindersQuery) (*usecases.ListRemindersResult, error) {
	return m.ExecuteFunc(ctx, query)
}

func setupDashboardRouter(h *DashboardHandler) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard/stats", h.GetStats)
	r.GET("/reminders", h.ListReminders)
	return r
}

func TestDashboardHandler_GetStats(t *testing.T) {
	h := NewDashboardHandler(
		&mockGetStatsExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.GetDashboardStatsQuery) (*usecases.DashboardStatsResult, error) {
				return &usecases.DashboardStatsResult{
					TotalTickets:   3,
					TotalCustomers: 2,
					TotalSales:     3000,
					TotalPurchase:  2800,
					TotalProfit:    200,
					DummyTickets:   1,
					Upcoming:       []ticketdto.TicketDTO{{ID: "tkt-1"}},
				}, nil
			},
		},
		nil,
	)
	r := setupDashboardRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                          `json:"success"`
		Data    usecases.DashboardStatsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data.TotalTickets)
	assert.Equal(t, 200.0, resp.Data.TotalProfit)
	require.Len(t, resp.Data.Upcoming, 1)
}

func TestDashboardHandler_ListReminders(t *testing.T) {
	var gotQuery usecases.ListRemindersQuery
	h := NewDashboardHandler(
		nil,
		&mockListRemindersExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.ListRemindersQuery) (*usecases.ListRemindersResult, error) {
				gotQuery = query
				return &usecases.ListRemindersResult{
					Reminders: []ticketdto.TicketDTO{{ID: "tkt-1", PNR: "ABC123"}},
				}, nil
			},
		},
	)
	r := setupDashboardRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/reminders?window_hours=48", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 48, gotQuery.WindowHours)
}

func TestDashboardHandler_ListReminders_InvalidWindow(t *testing.T) {
	called := false
	h := NewDashboardHandler(
		nil,
		&mockListRemindersExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.ListRemindersQuery) (*usecases.ListRemindersResult, error) {
				called = true
				return nil, nil
			},
		},
	)
	r := setupDashboardRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/reminders?window_hours=zero", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}
