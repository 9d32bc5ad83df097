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

// CafeHandler handles HTTP requests for the cafe directory
type CafeHandler struct {
	truckerUC trucker.TruckerUC
}

// NewCafeHandler creates a new cafe handler
func NewCafeHandler(truckerUC trucker.TruckerUC) *CafeHandler {
	return &CafeHandler{
		truckerUC: truckerUC,
	}
}

// AddCafe handles cafe creation requests
func (h *CafeHandler) AddCafe(c echo.Context) error {
	var req models.CafeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := req.Validate(); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	id, err := h.truckerUC.AddCafe(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to add cafe",
			logger.ErrorField(err),
			logger.String("title", req.Title),
		)
		return dataErrorResponse(c, err, "Failed to add cafe")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Cafe added", echo.Map{"id": id})
}

// ListCafes handles cafe listing requests. No seeding applies.
func (h *CafeHandler) ListCafes(c echo.Context) error {
	limit := utils.ParseLimit(c, constants.DefaultCafeLimit)

	docs, err := h.truckerUC.ListCafes(c.Request().Context(), limit)
	if err != nil {
		return dataErrorResponse(c, err, "Failed to retrieve cafes")
	}

	return c.JSON(http.StatusOK, utils.NormalizeDocuments(docs))
}
