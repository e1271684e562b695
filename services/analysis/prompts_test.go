package analysis

import (
	"testing"

	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestConstructMovementAnalysisPrompt(t *testing.T) {
	historical := []models.LocationPoint{
		{Timestamp: "2025-01-01T12:00:00Z", Latitude: 40.7128, Longitude: -74.0060, Speed: floatPtr(5.0)},
		{Timestamp: "2025-01-01T12:05:00Z", Latitude: 40.7130, Longitude: -74.0062, Speed: floatPtr(4.8)},
	}
	current := models.LocationPoint{Timestamp: "2025-01-01T12:10:00Z", Latitude: 40.7140, Longitude: -74.0070, Speed: floatPtr(8.5)}

	prompt := ConstructMovementAnalysisPrompt(historical, current)

	// The payload data must be embedded as JSON
	assert.Contains(t, prompt, `"latitude":40.7128`)
	assert.Contains(t, prompt, `"speed":8.5`)
	assert.Contains(t, prompt, `"timestamp":"2025-01-01T12:10:00Z"`)

	// The schema contract the extractor and fallback rely on
	for _, field := range []string{"abnormal_speed", "sudden_stop", "route_deviation", "safety_concerns", "risk_level", "reasoning", "recommended_action"} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, "Return your analysis in the following JSON format")
}

func TestConstructMovementAnalysisPrompt_EmptyHistory(t *testing.T) {
	current := models.LocationPoint{Latitude: 40.7140, Longitude: -74.0070}

	prompt := ConstructMovementAnalysisPrompt([]models.LocationPoint{}, current)

	assert.Contains(t, prompt, "Historical movement data: []")
	assert.Contains(t, prompt, "Current movement data: {")
}

func TestConstructRouteSafetyPrompt(t *testing.T) {
	routePoints := []models.RoutePoint{
		{Latitude: 40.7128, Longitude: -74.0060},
		{Latitude: 40.7150, Longitude: -74.0080},
	}
	crimeData := []models.CrimeIncident{
		// ~200m from the second route point, within the 0.5 km radius
		{Type: "theft", Latitude: 40.7145, Longitude: -74.0075, Timestamp: "2025-01-01T10:30:00Z"},
	}

	prompt := ConstructRouteSafetyPrompt(routePoints, crimeData, "evening")

	assert.Contains(t, prompt, `"type":"theft"`)
	assert.Contains(t, prompt, "Time of day: evening")
	assert.Contains(t, prompt, "Crime proximity per route point (incidents within 0.5 km):")
	assert.Contains(t, prompt, "- point 0 (cell ")
	assert.Contains(t, prompt, "- point 1 (cell ")

	for _, field := range []string{"safety_score", "risky_segments", "time_of_day_concerns", "recommendation", "safe_alternative_available"} {
		assert.Contains(t, prompt, field)
	}
}

func TestConstructRouteSafetyPrompt_NoRoutePoints(t *testing.T) {
	prompt := ConstructRouteSafetyPrompt(nil, nil, "morning")

	assert.Contains(t, prompt, "- no route points provided")
	assert.Contains(t, prompt, "Route points: null")
}

func TestFormatProximitySummary_CountsNearbyIncidents(t *testing.T) {
	routePoints := []models.RoutePoint{{Latitude: 40.7128, Longitude: -74.0060}}
	crimeData := []models.CrimeIncident{
		{Type: "theft", Latitude: 40.7130, Longitude: -74.0062},   // ~25m away
		{Type: "assault", Latitude: 40.7600, Longitude: -73.9800}, // ~5.5km away
	}

	summary := formatProximitySummary(routePoints, crimeData)

	assert.Contains(t, summary, "1 incidents")
}
