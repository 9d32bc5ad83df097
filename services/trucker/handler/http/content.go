package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/truckerru/backend/internal/pkg/constants"
	"github.com/truckerru/backend/internal/utils"
	"github.com/truckerru/backend/services/trucker"
)

// ContentHandler handles HTTP requests for the content feeds
// (truck history, news, driver guide)
type ContentHandler struct {
	truckerUC trucker.TruckerUC
}

// NewContentHandler creates a new content handler
func NewContentHandler(truckerUC trucker.TruckerUC) *ContentHandler {
	return &ContentHandler{
		truckerUC: truckerUC,
	}
}

// ListHistory handles truck history listing, seeding an empty collection
func (h *ContentHandler) ListHistory(c echo.Context) error {
	limit := utils.ParseLimit(c, constants.DefaultHistoryLimit)

	docs, err := h.truckerUC.GetTruckHistory(c.Request().Context(), limit)
	if err != nil {
		return dataErrorResponse(c, err, "Failed to retrieve history")
	}

	return c.JSON(http.StatusOK, utils.NormalizeDocuments(docs))
}

// ListNews handles news listing. An empty collection yields ephemeral
// placeholder items that are never persisted.
func (h *ContentHandler) ListNews(c echo.Context) error {
	limit := utils.ParseLimit(c, constants.DefaultNewsLimit)

	docs, err := h.truckerUC.GetNews(c.Request().Context(), limit)
	if err != nil {
		return dataErrorResponse(c, err, "Failed to retrieve news")
	}

	return c.JSON(http.StatusOK, utils.NormalizeDocuments(docs))
}

// ListGuide handles guide listing with a fixed limit, seeding an empty collection
func (h *ContentHandler) ListGuide(c echo.Context) error {
	docs, err := h.truckerUC.GetGuide(c.Request().Context())
	if err != nil {
		return dataErrorResponse(c, err, "Failed to retrieve guide")
	}

	return c.JSON(http.StatusOK, utils.NormalizeDocuments(docs))
}
