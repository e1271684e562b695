package analysis

import (
	"context"

	"github.com/childguard/ai-microservice/internal/pkg/models"
)

// MovementUC defines the interface for movement analysis business logic.
// AnalyzeMovement always returns a well-formed result: AI failures are
// absorbed into a deterministic rule-based fallback.
type MovementUC interface {
	AnalyzeMovement(ctx context.Context, historicalData []models.LocationPoint, currentData models.LocationPoint, userID string) (map[string]interface{}, error)
}

// RouteSafetyUC defines the interface for route safety business logic.
// Same never-fail contract as MovementUC.
type RouteSafetyUC interface {
	AnalyzeRouteSafety(ctx context.Context, routePoints []models.RoutePoint, crimeData []models.CrimeIncident, timeOfDay, userID string) (map[string]interface{}, error)
}
