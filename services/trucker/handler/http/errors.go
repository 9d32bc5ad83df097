package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/truckerru/backend/internal/pkg/database"
	"github.com/truckerru/backend/internal/utils"
	"github.com/truckerru/backend/services/trucker"
)

// dataErrorResponse maps data-layer failures onto HTTP statuses:
// store-unset to 503, not-found sentinels to 404, the rest to 500.
func dataErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, database.ErrStoreUnavailable):
		return utils.ServiceUnavailableResponse(c, "Database not configured")
	case errors.Is(err, trucker.ErrProfileNotFound):
		return utils.NotFoundResponse(c, "Profile not found")
	case errors.Is(err, trucker.ErrQuestionNotFound):
		return utils.NotFoundResponse(c, "Question not found")
	default:
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
