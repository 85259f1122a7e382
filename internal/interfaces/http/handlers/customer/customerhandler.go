package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flyadmin/internal/application/customer/usecases"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/logger"
	"flyadmin/internal/shared/utils"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

type CustomerHandler struct {
	createCustomerUC usecases.CreateCustomerExecutor
	listCustomersUC  usecases.ListCustomersExecutor
	logger           logger.Interface
}

func NewCustomerHandler(
	createCustomerUC usecases.CreateCustomerExecutor,
	listCustomersUC usecases.ListCustomersExecutor,
) *CustomerHandler {
	return &CustomerHandler{
		createCustomerUC: createCustomerUC,
		listCustomersUC:  listCustomersUC,
		logger:           logger.NewLogger(),
	}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateCustomerCommand{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	}

	result, err := h.createCustomerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Customer created successfully")
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	result, err := h.listCustomersUC.Execute(c.Request.Context(), usecases.ListCustomersQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Customers)
}
