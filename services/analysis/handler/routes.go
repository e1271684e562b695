package handler

import (
	"github.com/childguard/ai-microservice/services/analysis/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the protocol handlers for the analysis service
type Handler struct {
	analysisHandler *http.AnalysisHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(analysisHandler *http.AnalysisHandler) *Handler {
	return &Handler{analysisHandler: analysisHandler}
}

// RegisterRoutes registers the analysis endpoints on the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	analyze := e.Group("/analyze")
	analyze.POST("/movement", h.analysisHandler.AnalyzeMovement)
	analyze.POST("/route-safety", h.analysisHandler.AnalyzeRouteSafety)
}
