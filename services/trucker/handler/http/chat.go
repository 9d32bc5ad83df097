package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/truckerru/backend/internal/pkg/constants"
	"github.com/truckerru/backend/internal/pkg/logger"
	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/internal/utils"
	"github.com/truckerru/backend/services/trucker"
)

// ChatHandler handles HTTP requests for the global chat room
type ChatHandler struct {
	truckerUC trucker.TruckerUC
}

// NewChatHandler creates a new chat handler
func NewChatHandler(truckerUC trucker.TruckerUC) *ChatHandler {
	return &ChatHandler{
		truckerUC: truckerUC,
	}
}

// PostMessage handles chat message creation requests
func (h *ChatHandler) PostMessage(c echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := req.Validate(); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	id, err := h.truckerUC.PostChatMessage(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to post chat message",
			logger.ErrorField(err),
			logger.String("handle", req.Handle),
		)
		return dataErrorResponse(c, err, "Failed to post message")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message posted", echo.Map{"id": id})
}

// ListMessages handles chat listing requests, newest first
func (h *ChatHandler) ListMessages(c echo.Context) error {
	limit := utils.ParseLimit(c, constants.DefaultChatLimit)

	docs, err := h.truckerUC.GetChatMessages(c.Request().Context(), limit)
	if err != nil {
		return dataErrorResponse(c, err, "Failed to retrieve messages")
	}

	return c.JSON(http.StatusOK, utils.NormalizeDocuments(docs))
}
