package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/childguard/ai-microservice/services/analysis/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func sampleRoute() []models.RoutePoint {
	return []models.RoutePoint{
		{Latitude: 40.7128, Longitude: -74.0060},
		{Latitude: 40.7150, Longitude: -74.0080},
		{Latitude: 40.7170, Longitude: -74.0100},
	}
}

func sampleCrimeData() []models.CrimeIncident {
	return []models.CrimeIncident{
		{Type: "theft", Latitude: 40.7145, Longitude: -74.0075, Timestamp: "2025-01-01T10:30:00Z"},
		{Type: "assault", Latitude: 40.7155, Longitude: -74.0085, Timestamp: "2025-01-01T20:15:00Z"},
	}
}

func TestAnalyzeRouteSafety_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockGW := mocks.NewMockAnalysisGW(ctrl)

	var capturedSystem string
	mockClient.EXPECT().
		GetAnalysis(gomock.Any(), gomock.Any(), gomock.Any(), 0.3).
		DoAndReturn(func(_ context.Context, systemPrompt, userPrompt string, _ float64) (map[string]interface{}, error) {
			capturedSystem = systemPrompt
			assert.Contains(t, userPrompt, "Crime data near route")
			return map[string]interface{}{
				"safety_score":               float64(7),
				"time_of_day_concerns":       false,
				"safe_alternative_available": true,
			}, nil
		})
	mockGW.EXPECT().
		PublishAnalysisCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.AnalysisEvent) error {
			assert.Equal(t, "route_safety", event.Kind)
			assert.False(t, event.Fallback)
			return nil
		})

	uc := NewRouteSafetyUC(mockClient, mockGW)
	result, err := uc.AnalyzeRouteSafety(context.Background(), sampleRoute(), sampleCrimeData(), "afternoon", "test-user-123")

	assert.NoError(t, err)
	assert.Equal(t, float64(7), result["safety_score"])
	assert.Equal(t, "test-user-123", result["user_id"])
	assert.NotEmpty(t, result["analysis_timestamp"])
	assert.Contains(t, capturedSystem, "route safety analysis")
}

func TestAnalyzeRouteSafety_FallbackOnAIFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockGW := mocks.NewMockAnalysisGW(ctrl)

	mockClient.EXPECT().
		GetAnalysis(gomock.Any(), gomock.Any(), gomock.Any(), 0.3).
		Return(nil, errors.New("backend unreachable"))
	mockGW.EXPECT().
		PublishAnalysisCompleted(gomock.Any(), gomock.Any()).
		Return(nil)

	uc := NewRouteSafetyUC(mockClient, mockGW)
	result, err := uc.AnalyzeRouteSafety(context.Background(), sampleRoute(), sampleCrimeData(), "afternoon", "test-user-123")

	assert.NoError(t, err)
	assert.Equal(t, true, result["is_fallback"])
	// 2 incidents during the day: 10 - 2 = 8
	assert.Equal(t, 8, result["safety_score"])
	assert.Equal(t, false, result["time_of_day_concerns"])
	assert.Equal(t, "Route appears acceptable", result["recommendation"])
	assert.Equal(t, false, result["safe_alternative_available"])
	assert.Empty(t, result["risky_segments"])
}

func TestFallbackRouteSafety_NightPenalty(t *testing.T) {
	result := fallbackRouteSafety(sampleCrimeData(), "late evening", "test-user-123")

	// 10 - 2 incidents - 2 night penalty = 6
	assert.Equal(t, 6, result["safety_score"])
	assert.Equal(t, true, result["time_of_day_concerns"])
	assert.Equal(t, "Consider daytime travel", result["recommendation"])
}

func TestFallbackRouteSafety_CaseInsensitiveKeywords(t *testing.T) {
	result := fallbackRouteSafety(nil, "NIGHT", "test-user-123")

	assert.Equal(t, true, result["time_of_day_concerns"])
	// 10 - 0 incidents - 2 night penalty = 8
	assert.Equal(t, 8, result["safety_score"])
}

func TestFallbackRouteSafety_ScoreFloorsAtOne(t *testing.T) {
	incidents := make([]models.CrimeIncident, 12)
	for i := range incidents {
		incidents[i] = models.CrimeIncident{Type: "theft", Latitude: 40.7, Longitude: -74.0}
	}

	result := fallbackRouteSafety(incidents, "night", "test-user-123")

	assert.Equal(t, 1, result["safety_score"])
}

func TestFallbackRouteSafety_NinePlusIncidentsDaytime(t *testing.T) {
	incidents := make([]models.CrimeIncident, 9)
	for i := range incidents {
		incidents[i] = models.CrimeIncident{Type: "theft", Latitude: 40.7, Longitude: -74.0}
	}

	result := fallbackRouteSafety(incidents, "morning", "test-user-123")

	assert.Equal(t, 1, result["safety_score"])
	assert.Equal(t, false, result["time_of_day_concerns"])
}
