package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/services/trucker"
)

// DiagnosticsHandler serves the liveness, schema viewer and store
// connectivity endpoints. These succeed with or without a store.
type DiagnosticsHandler struct {
	truckerUC trucker.TruckerUC
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(truckerUC trucker.TruckerUC) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		truckerUC: truckerUC,
	}
}

// Root handles the liveness endpoint
func (h *DiagnosticsHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"app":    "Trucker RU",
		"status": "ok",
	})
}

// Schema lists the entity type names for the database viewer
func (h *DiagnosticsHandler) Schema(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"models": models.SchemaNames,
	})
}

// TestStore reports store configuration and connectivity. Store
// failures are absorbed into the payload rather than failing the call.
func (h *DiagnosticsHandler) TestStore(c echo.Context) error {
	return c.JSON(http.StatusOK, h.truckerUC.StoreDiagnostics(c.Request().Context()))
}
