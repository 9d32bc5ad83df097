package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/truckerru/backend/internal/pkg/logger"
	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/internal/utils"
	"github.com/truckerru/backend/services/trucker"
)

// ProfileHandler handles HTTP requests for profile operations
type ProfileHandler struct {
	truckerUC trucker.TruckerUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(truckerUC trucker.TruckerUC) *ProfileHandler {
	return &ProfileHandler{
		truckerUC: truckerUC,
	}
}

// UpsertProfile handles profile create-or-update requests keyed by handle
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	var req models.ProfileRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for profile upsert",
			logger.ErrorField(err),
			logger.String("endpoint", "UpsertProfile"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := req.Validate(); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	id, err := h.truckerUC.UpsertProfile(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to save profile",
			logger.ErrorField(err),
			logger.String("handle", req.Handle),
		)
		return dataErrorResponse(c, err, "Failed to save profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile saved", echo.Map{"id": id})
}

// GetProfile handles profile retrieval requests by handle
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	handle := c.Param("handle")
	if handle == "" {
		return utils.BadRequestResponse(c, "Invalid handle")
	}

	doc, err := h.truckerUC.GetProfile(c.Request().Context(), handle)
	if err != nil {
		return dataErrorResponse(c, err, "Failed to retrieve profile")
	}

	return c.JSON(http.StatusOK, utils.NormalizeID(doc))
}
