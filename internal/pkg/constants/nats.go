package constants

// NATS subjects for completed analysis events
const (
	SubjectMovementCompleted    = "analysis.movement.completed"
	SubjectRouteSafetyCompleted = "analysis.routesafety.completed"
)
