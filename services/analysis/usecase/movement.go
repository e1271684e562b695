package usecase

import (
	"context"

	"github.com/childguard/ai-microservice/internal/pkg/llm"
	"github.com/childguard/ai-microservice/internal/pkg/logger"
	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/childguard/ai-microservice/services/analysis"
)

const (
	movementSystemPrompt = "You are an AI specialized in analyzing GPS movements to detect potential safety issues for children."

	// Movement analysis runs at a lower temperature than route safety:
	// speed-threshold framing leaves little room for interpretation.
	movementTemperature = 0.2
)

// MovementUC implements the analysis.MovementUC interface
type MovementUC struct {
	aiClient llm.Client
	gw       analysis.AnalysisGW
}

// NewMovementUC creates a new movement analysis use case
func NewMovementUC(aiClient llm.Client, gw analysis.AnalysisGW) *MovementUC {
	return &MovementUC{
		aiClient: aiClient,
		gw:       gw,
	}
}

// AnalyzeMovement analyzes movement patterns to detect anomalies. It never
// fails: any AI-path error is absorbed by the rule-based fallback.
func (uc *MovementUC) AnalyzeMovement(ctx context.Context, historicalData []models.LocationPoint, currentData models.LocationPoint, userID string) (map[string]interface{}, error) {
	prompt := analysis.ConstructMovementAnalysisPrompt(historicalData, currentData)

	result, err := uc.aiClient.GetAnalysis(ctx, movementSystemPrompt, prompt, movementTemperature)
	if err != nil {
		logger.Warn("AI movement analysis failed, using fallback",
			logger.Err(err),
			logger.String("user_id", userID))
		result = fallbackMovementAnalysis(historicalData, currentData, userID)
	} else {
		stampMetadata(result, userID)
	}

	publishCompleted(ctx, uc.gw, "movement", userID, result)
	return result, nil
}

// fallbackMovementAnalysis is the deterministic rule-based substitute for the
// AI answer. All inputs are defensively defaulted so the computation itself
// cannot fail.
func fallbackMovementAnalysis(historicalData []models.LocationPoint, currentData models.LocationPoint, userID string) map[string]interface{} {
	currentSpeed := 0.0
	if currentData.Speed != nil {
		currentSpeed = *currentData.Speed
	}

	// Samples without a speed value are ignored
	var sum, maxSpeed float64
	count := 0
	for _, point := range historicalData {
		if point.Speed == nil {
			continue
		}
		sum += *point.Speed
		if *point.Speed > maxSpeed {
			maxSpeed = *point.Speed
		}
		count++
	}

	avgSpeed := 0.0
	if count > 0 {
		avgSpeed = sum / float64(count)
	}

	abnormalSpeed := currentSpeed > maxSpeed*1.2 || currentSpeed > avgSpeed*1.5

	riskLevel := 2
	recommendedAction := "No action needed"
	if abnormalSpeed {
		riskLevel = 7
		recommendedAction = "Monitor speed"
	}

	result := map[string]interface{}{
		"abnormal_speed":     abnormalSpeed,
		"sudden_stop":        false, // Cannot determine in simple fallback
		"route_deviation":    false, // Cannot determine in simple fallback
		"safety_concerns":    abnormalSpeed,
		"risk_level":         riskLevel,
		"reasoning":          "Fallback analysis: Speed analysis only",
		"recommended_action": recommendedAction,
		"is_fallback":        true,
	}
	stampMetadata(result, userID)
	return result
}
