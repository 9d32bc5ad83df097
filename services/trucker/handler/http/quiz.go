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

// QuizHandler handles HTTP requests for the trivia quiz
type QuizHandler struct {
	truckerUC trucker.TruckerUC
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(truckerUC trucker.TruckerUC) *QuizHandler {
	return &QuizHandler{
		truckerUC: truckerUC,
	}
}

// ListQuestions handles quiz question listing, seeding an empty collection
func (h *QuizHandler) ListQuestions(c echo.Context) error {
	limit := utils.ParseLimit(c, constants.DefaultQuizLimit)

	docs, err := h.truckerUC.GetQuizQuestions(c.Request().Context(), limit)
	if err != nil {
		logger.Error("Failed to list quiz questions", logger.ErrorField(err))
		return dataErrorResponse(c, err, "Failed to retrieve questions")
	}

	return c.JSON(http.StatusOK, utils.NormalizeDocuments(docs))
}

// GradeAnswer handles quiz answer grading requests
func (h *QuizHandler) GradeAnswer(c echo.Context) error {
	var req models.AnswerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := req.Validate(); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.truckerUC.GradeAnswer(c.Request().Context(), &req)
	if err != nil {
		return dataErrorResponse(c, err, "Failed to grade answer")
	}

	return c.JSON(http.StatusOK, result)
}
