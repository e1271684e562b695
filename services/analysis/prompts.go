package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/childguard/ai-microservice/internal/utils"
)

// proximityRadiusKm is the radius used to summarize crime incidents around
// each route point for the model's context
const proximityRadiusKm = 0.5

// ConstructMovementAnalysisPrompt creates a detailed prompt for movement
// analysis. The JSON schema in the prompt is a contract with the extractor:
// field names must match what the services read downstream.
func ConstructMovementAnalysisPrompt(historicalData []models.LocationPoint, currentData models.LocationPoint) string {
	historicalJSON := mustMarshal(historicalData)
	currentJSON := mustMarshal(currentData)

	return fmt.Sprintf(`Analyze the following movement data for safety concerns:

Historical movement data: %s
Current movement data: %s

Please analyze for:
1. Abnormal speed (higher than typical patterns)
2. Sudden stops in unusual locations
3. Deviation from usual routes
4. Any patterns that might indicate safety concerns

Return your analysis in the following JSON format:
{
    "abnormal_speed": true/false,
    "sudden_stop": true/false,
    "route_deviation": true/false,
    "safety_concerns": true/false,
    "risk_level": 1-10,
    "reasoning": "Your detailed reasoning here",
    "recommended_action": "Suggested next steps if any"
}`, historicalJSON, currentJSON)
}

// ConstructRouteSafetyPrompt creates a detailed prompt for route safety
// analysis, including a precomputed crime-proximity summary per route point
func ConstructRouteSafetyPrompt(routePoints []models.RoutePoint, crimeData []models.CrimeIncident, timeOfDay string) string {
	routeJSON := mustMarshal(routePoints)
	crimeJSON := mustMarshal(crimeData)

	return fmt.Sprintf(`Analyze the safety of the following route:

Route points: %s
Crime data near route: %s
Time of day: %s

Crime proximity per route point (incidents within %.1f km):
%s

Please analyze for:
1. Overall route safety
2. Risky segments of the route
3. Time-of-day considerations
4. Recommended alternatives if necessary

Return your analysis in the following JSON format:
{
    "safety_score": 1-10,
    "risky_segments": [
        {
            "start_index": int,
            "end_index": int,
            "risk_level": 1-10,
            "reasons": ["reason1", "reason2"]
        }
    ],
    "time_of_day_concerns": true/false,
    "recommendation": "Your recommendation here",
    "safe_alternative_available": true/false
}`, routeJSON, crimeJSON, timeOfDay, proximityRadiusKm, formatProximitySummary(routePoints, crimeData))
}

// formatProximitySummary renders the crime-proximity summary as one line per
// route point
func formatProximitySummary(routePoints []models.RoutePoint, crimeData []models.CrimeIncident) string {
	summary := utils.SummarizeCrimeProximity(routePoints, crimeData, proximityRadiusKm)
	if len(summary) == 0 {
		return "- no route points provided"
	}

	lines := make([]string, 0, len(summary))
	for _, entry := range summary {
		lines = append(lines, fmt.Sprintf("- point %d (cell %s): %d incidents", entry.Index, entry.Geohash, entry.IncidentCount))
	}
	return strings.Join(lines, "\n")
}

// mustMarshal serializes payload data for prompt embedding. The request
// models contain only JSON-serializable fields, so failure cannot occur;
// an empty JSON value keeps the prompt well-formed regardless.
func mustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
