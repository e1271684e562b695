package analysis

import (
	"context"

	"github.com/childguard/ai-microservice/internal/pkg/models"
)

// AnalysisGW defines the analysis gateways interface
type AnalysisGW interface {
	PublishAnalysisCompleted(ctx context.Context, event *models.AnalysisEvent) error
}
