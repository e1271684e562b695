package usecase

import (
	"context"
	"strings"

	"github.com/childguard/ai-microservice/internal/pkg/llm"
	"github.com/childguard/ai-microservice/internal/pkg/logger"
	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/childguard/ai-microservice/services/analysis"
)

const (
	routeSafetySystemPrompt = "You are an AI specialized in route safety analysis for children."
	routeSafetyTemperature  = 0.3
)

// nightKeywords mark time-of-day descriptions considered less safe
var nightKeywords = []string{"evening", "night", "late"}

// RouteSafetyUC implements the analysis.RouteSafetyUC interface
type RouteSafetyUC struct {
	aiClient llm.Client
	gw       analysis.AnalysisGW
}

// NewRouteSafetyUC creates a new route safety use case
func NewRouteSafetyUC(aiClient llm.Client, gw analysis.AnalysisGW) *RouteSafetyUC {
	return &RouteSafetyUC{
		aiClient: aiClient,
		gw:       gw,
	}
}

// AnalyzeRouteSafety analyzes the safety of a proposed route. It never
// fails: any AI-path error is absorbed by the rule-based fallback.
func (uc *RouteSafetyUC) AnalyzeRouteSafety(ctx context.Context, routePoints []models.RoutePoint, crimeData []models.CrimeIncident, timeOfDay, userID string) (map[string]interface{}, error) {
	prompt := analysis.ConstructRouteSafetyPrompt(routePoints, crimeData, timeOfDay)

	result, err := uc.aiClient.GetAnalysis(ctx, routeSafetySystemPrompt, prompt, routeSafetyTemperature)
	if err != nil {
		logger.Warn("AI route safety analysis failed, using fallback",
			logger.Err(err),
			logger.String("user_id", userID))
		result = fallbackRouteSafety(crimeData, timeOfDay, userID)
	} else {
		stampMetadata(result, userID)
	}

	publishCompleted(ctx, uc.gw, "route_safety", userID, result)
	return result, nil
}

// fallbackRouteSafety is the deterministic rule-based substitute for the AI
// answer. All inputs are defensively defaulted so the computation itself
// cannot fail.
func fallbackRouteSafety(crimeData []models.CrimeIncident, timeOfDay, userID string) map[string]interface{} {
	crimeCount := len(crimeData)

	safetyScore := 1
	if crimeCount < 10 {
		safetyScore = 10 - crimeCount
		if safetyScore < 1 {
			safetyScore = 1
		}
	}

	// Night travel is considered less safe
	timeConcerns := false
	lowered := strings.ToLower(timeOfDay)
	for _, keyword := range nightKeywords {
		if strings.Contains(lowered, keyword) {
			timeConcerns = true
			break
		}
	}

	recommendation := "Route appears acceptable"
	if timeConcerns {
		safetyScore -= 2
		if safetyScore < 1 {
			safetyScore = 1
		}
		recommendation = "Consider daytime travel"
	}

	result := map[string]interface{}{
		"safety_score":               safetyScore,
		"risky_segments":             []interface{}{}, // Cannot localize risk in simple fallback
		"time_of_day_concerns":       timeConcerns,
		"recommendation":             recommendation,
		"safe_alternative_available": false,
		"is_fallback":                true,
	}
	stampMetadata(result, userID)
	return result
}
