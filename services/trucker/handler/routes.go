package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/services/trucker/handler/http"
)

// Handler coordinates the HTTP handlers for the trucker service
type Handler struct {
	profileHandler *http.ProfileHandler
	quizHandler    *http.QuizHandler
	cafeHandler    *http.CafeHandler
	contentHandler *http.ContentHandler
	chatHandler    *http.ChatHandler
	diagHandler    *http.DiagnosticsHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	profileHandler *http.ProfileHandler,
	quizHandler *http.QuizHandler,
	cafeHandler *http.CafeHandler,
	contentHandler *http.ContentHandler,
	chatHandler *http.ChatHandler,
	diagHandler *http.DiagnosticsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		profileHandler: profileHandler,
		quizHandler:    quizHandler,
		cafeHandler:    cafeHandler,
		contentHandler: contentHandler,
		chatHandler:    chatHandler,
		diagHandler:    diagHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all routes. chatLimiter is optional rate
// limiting middleware applied to chat posting when Redis is configured.
func (h *Handler) RegisterRoutes(e *echo.Echo, chatLimiter echo.MiddlewareFunc) {
	// Diagnostics (always available, store or not)
	e.GET("/", h.diagHandler.Root)
	e.GET("/schema", h.diagHandler.Schema)
	e.GET("/test", h.diagHandler.TestStore)

	api := e.Group("/api")

	// Profiles
	api.POST("/profile", h.profileHandler.UpsertProfile)
	api.GET("/profile/:handle", h.profileHandler.GetProfile)

	// Quiz
	api.GET("/quiz/questions", h.quizHandler.ListQuestions)
	api.POST("/quiz/answer", h.quizHandler.GradeAnswer)

	// Cafes
	api.POST("/cafes", h.cafeHandler.AddCafe)
	api.GET("/cafes", h.cafeHandler.ListCafes)

	// Content feeds
	api.GET("/history", h.contentHandler.ListHistory)
	api.GET("/news", h.contentHandler.ListNews)
	api.GET("/guide", h.contentHandler.ListGuide)

	// Chat
	if chatLimiter != nil {
		api.POST("/chat", h.chatHandler.PostMessage, chatLimiter)
	} else {
		api.POST("/chat", h.chatHandler.PostMessage)
	}
	api.GET("/chat", h.chatHandler.ListMessages)
}
