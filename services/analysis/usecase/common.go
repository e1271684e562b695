package usecase

import (
	"context"
	"time"

	"github.com/childguard/ai-microservice/internal/pkg/logger"
	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/childguard/ai-microservice/services/analysis"
	"github.com/google/uuid"
)

// stampMetadata adds the analysis timestamp and user ID to an AI result
func stampMetadata(result map[string]interface{}, userID string) {
	result["analysis_timestamp"] = time.Now().UTC().Format(time.RFC3339)
	result["user_id"] = userID
}

// publishCompleted publishes a completed analysis event. Publishing is
// best-effort: failures are logged and never affect the returned result.
func publishCompleted(ctx context.Context, gw analysis.AnalysisGW, kind, userID string, result map[string]interface{}) {
	if gw == nil {
		return
	}

	fallback, _ := result["is_fallback"].(bool)
	event := &models.AnalysisEvent{
		AnalysisID: uuid.NewString(),
		UserID:     userID,
		Kind:       kind,
		Fallback:   fallback,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}

	if err := gw.PublishAnalysisCompleted(ctx, event); err != nil {
		logger.Warn("Failed to publish analysis event",
			logger.Err(err),
			logger.String("kind", kind),
			logger.String("user_id", userID))
	}
}
