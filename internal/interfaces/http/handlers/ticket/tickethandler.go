package ticket

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"flyadmin/internal/application/ticket/usecases"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/logger"
	"flyadmin/internal/shared/utils"
)

// maxDocumentSize bounds extraction uploads (10 MiB).
const maxDocumentSize = 10 << 20

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	extractDataUC  usecases.ExtractTicketDataExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	extractDataUC usecases.ExtractTicketDataExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		listTicketsUC:  listTicketsUC,
		extractDataUC:  extractDataUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCreateCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID := c.Param("id")

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToUpdateCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	cmd := usecases.DeleteTicketCommand{TicketID: c.Param("id")}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Tickets)
}

// ExtractTicketData handles POST /tickets/extract. The document arrives as
// a multipart "document" field or as base64 in a JSON body.
func (h *TicketHandler) ExtractTicketData(c *gin.Context) {
	document, mimeType, err := h.readDocument(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ExtractTicketDataCommand{Document: document, MimeType: mimeType}
	result, err := h.extractDataUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Data)
}

func (h *TicketHandler) readDocument(c *gin.Context) ([]byte, string, error) {
	contentType := c.GetHeader("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		fileHeader, err := c.FormFile("document")
		if err != nil {
			return nil, "", errors.NewBadRequestError("Missing document upload", err.Error())
		}
		if fileHeader.Size > maxDocumentSize {
			return nil, "", errors.NewBadRequestError("Document exceeds the maximum upload size")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, "", errors.NewBadRequestError("Failed to open document upload", err.Error())
		}
		defer file.Close()

		document, err := io.ReadAll(io.LimitReader(file, maxDocumentSize))
		if err != nil {
			return nil, "", errors.NewBadRequestError("Failed to read document upload", err.Error())
		}
		return document, fileHeader.Header.Get("Content-Type"), nil
	}

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, "", errors.NewBadRequestError("Invalid request body", err.Error())
	}

	document, err := base64.StdEncoding.DecodeString(req.DocumentBase64)
	if err != nil {
		return nil, "", errors.NewBadRequestError("Document is not valid base64", err.Error())
	}
	if len(document) > maxDocumentSize {
		return nil, "", errors.NewBadRequestError("Document exceeds the maximum upload size")
	}
	return document, req.MimeType, nil
}
