package dashboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flyadmin/internal/application/dashboard/usecases"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/logger"
	"flyadmin/internal/shared/utils"
)

type DashboardHandler struct {
	getStatsUC      usecases.GetDashboardStatsExecutor
	listRemindersUC usecases.ListRemindersExecutor
	logger          logger.Interface
}

func NewDashboardHandler(
	getStatsUC usecases.GetDashboardStatsExecutor,
	listRemindersUC usecases.ListRemindersExecutor,
) *DashboardHandler {
	return &DashboardHandler{
		getStatsUC:      getStatsUC,
		listRemindersUC: listRemindersUC,
		logger:          logger.NewLogger(),
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context(), usecases.GetDashboardStatsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListReminders handles GET /reminders
func (h *DashboardHandler) ListReminders(c *gin.Context) {
	query := usecases.ListRemindersQuery{}

	if raw := c.Query("window_hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("window_hours must be a positive integer"))
			return
		}
		query.WindowHours = hours
	}

	result, err := h.listRemindersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Reminders)
}
