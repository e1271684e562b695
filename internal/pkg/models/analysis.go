package models

import "time"

// LocationPoint represents a single GPS sample. All fields are optional:
// devices do not always report speed, and historical exports may carry
// partial records.
type LocationPoint struct {
	Timestamp string   `json:"timestamp,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Speed     *float64 `json:"speed,omitempty"`
}

// RoutePoint represents a single coordinate on a proposed route
type RoutePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CrimeIncident represents a reported crime incident near a route
type CrimeIncident struct {
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// MovementAnalysisRequest represents a movement pattern analysis request
type MovementAnalysisRequest struct {
	HistoricalData []LocationPoint `json:"historical_data"`
	CurrentData    LocationPoint   `json:"current_data"`
	UserID         string          `json:"user_id" validate:"required"`
}

// RouteSafetyRequest represents a route safety evaluation request
type RouteSafetyRequest struct {
	RoutePoints []RoutePoint    `json:"route_points"`
	CrimeData   []CrimeIncident `json:"crime_data"`
	TimeOfDay   string          `json:"time_of_day" validate:"required"`
	UserID      string          `json:"user_id" validate:"required"`
}

// AnalysisEvent represents a completed analysis published to NATS
type AnalysisEvent struct {
	AnalysisID string                 `json:"analysis_id"`
	UserID     string                 `json:"user_id"`
	Kind       string                 `json:"kind"` // "movement" or "route_safety"
	Fallback   bool                   `json:"fallback"`
	Result     map[string]interface{} `json:"result"`
	CreatedAt  time.Time              `json:"created_at"`
}
