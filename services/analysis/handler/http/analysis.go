package http

import (
	"net/http"

	"github.com/childguard/ai-microservice/internal/pkg/logger"
	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/childguard/ai-microservice/internal/utils"
	"github.com/childguard/ai-microservice/services/analysis"
	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles HTTP requests for safety analysis operations
type AnalysisHandler struct {
	movementUC    analysis.MovementUC
	routeSafetyUC analysis.RouteSafetyUC
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(movementUC analysis.MovementUC, routeSafetyUC analysis.RouteSafetyUC) *AnalysisHandler {
	return &AnalysisHandler{
		movementUC:    movementUC,
		routeSafetyUC: routeSafetyUC,
	}
}

// AnalyzeMovement handles movement pattern analysis requests
func (h *AnalysisHandler) AnalyzeMovement(c echo.Context) error {
	var req models.MovementAnalysisRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for movement analysis",
			logger.Err(err),
			logger.String("endpoint", "AnalyzeMovement"))
		return utils.ValidationErrorResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	logger.Info("Analyzing movement", logger.String("user_id", req.UserID))

	result, err := h.movementUC.AnalyzeMovement(c.Request().Context(), req.HistoricalData, req.CurrentData, req.UserID)
	if err != nil {
		logger.Error("Movement analysis failed",
			logger.Err(err),
			logger.String("user_id", req.UserID))
		return utils.AnalysisErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// AnalyzeRouteSafety handles route safety evaluation requests
func (h *AnalysisHandler) AnalyzeRouteSafety(c echo.Context) error {
	var req models.RouteSafetyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for route safety analysis",
			logger.Err(err),
			logger.String("endpoint", "AnalyzeRouteSafety"))
		return utils.ValidationErrorResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	logger.Info("Analyzing route safety", logger.String("user_id", req.UserID))

	result, err := h.routeSafetyUC.AnalyzeRouteSafety(c.Request().Context(), req.RoutePoints, req.CrimeData, req.TimeOfDay, req.UserID)
	if err != nil {
		logger.Error("Route safety analysis failed",
			logger.Err(err),
			logger.String("user_id", req.UserID))
		return utils.AnalysisErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
