package supplier

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flyadmin/internal/application/supplier/usecases"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/logger"
	"flyadmin/internal/shared/utils"
)

type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

type SupplierHandler struct {
	createSupplierUC usecases.CreateSupplierExecutor
	listSuppliersUC  usecases.ListSuppliersExecutor
	logger           logger.Interface
}

func NewSupplierHandler(
	createSupplierUC usecases.CreateSupplierExecutor,
	listSuppliersUC usecases.ListSuppliersExecutor,
) *SupplierHandler {
	return &SupplierHandler{
		createSupplierUC: createSupplierUC,
		listSuppliersUC:  listSuppliersUC,
		logger:           logger.NewLogger(),
	}
}

// CreateSupplier handles POST /suppliers
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create supplier", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateSupplierCommand{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	}

	result, err := h.createSupplierUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Supplier created successfully")
}

// ListSuppliers handles GET /suppliers
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	result, err := h.listSuppliersUC.Execute(c.Request.Context(), usecases.ListSuppliersQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Suppliers)
}
