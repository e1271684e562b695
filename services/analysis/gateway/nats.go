package gateway

import (
	"context"
	"fmt"

	"github.com/childguard/ai-microservice/internal/pkg/constants"
	"github.com/childguard/ai-microservice/internal/pkg/models"
	natspkg "github.com/childguard/ai-microservice/internal/pkg/nats"
)

// AnalysisGW publishes completed analysis events to NATS.
// A nil client disables publishing, which keeps the service fully
// functional in deployments without a message broker.
type AnalysisGW struct {
	producer *natspkg.Producer
}

// NewAnalysisGW creates a new analysis gateway
func NewAnalysisGW(client *natspkg.Client) *AnalysisGW {
	if client == nil {
		return &AnalysisGW{}
	}
	return &AnalysisGW{producer: natspkg.NewProducer(client)}
}

// PublishAnalysisCompleted publishes a completed analysis event to the
// subject matching its kind
func (g *AnalysisGW) PublishAnalysisCompleted(_ context.Context, event *models.AnalysisEvent) error {
	if g.producer == nil {
		return nil
	}

	subject := constants.SubjectMovementCompleted
	if event.Kind == "route_safety" {
		subject = constants.SubjectRouteSafetyCompleted
	}

	if err := g.producer.Publish(subject, event); err != nil {
		return fmt.Errorf("failed to publish analysis event: %w", err)
	}
	return nil
}
