package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/childguard/ai-microservice/internal/utils"
	"github.com/childguard/ai-microservice/services/analysis/mocks"
	"github.com/childguard/ai-microservice/services/analysis/usecase"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const movementRequestBody = `{
	"historical_data": [
		{"timestamp": "2025-01-01T12:00:00Z", "latitude": 40.7128, "longitude": -74.0060, "speed": 5.0},
		{"timestamp": "2025-01-01T12:05:00Z", "latitude": 40.7130, "longitude": -74.0062, "speed": 4.8},
		{"timestamp": "2025-01-01T12:10:00Z", "latitude": 40.7133, "longitude": -74.0065, "speed": 5.2}
	],
	"current_data": {"timestamp": "2025-01-01T12:15:00Z", "latitude": 40.7140, "longitude": -74.0070, "speed": 8.5},
	"user_id": "test-user-123"
}`

const routeRequestBody = `{
	"route_points": [
		{"latitude": 40.7128, "longitude": -74.0060},
		{"latitude": 40.7150, "longitude": -74.0080}
	],
	"crime_data": [
		{"type": "theft", "latitude": 40.7145, "longitude": -74.0075, "timestamp": "2025-01-01T10:30:00Z"}
	],
	"time_of_day": "afternoon",
	"user_id": "test-user-123"
}`

func newTestContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAnalyzeMovement_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMovementUC := mocks.NewMockMovementUC(ctrl)
	mockRouteSafetyUC := mocks.NewMockRouteSafetyUC(ctrl)
	h := NewAnalysisHandler(mockMovementUC, mockRouteSafetyUC)

	mockMovementUC.EXPECT().
		AnalyzeMovement(gomock.Any(), gomock.Any(), gomock.Any(), "test-user-123").
		Return(map[string]interface{}{
			"abnormal_speed": true,
			"risk_level":     6,
			"user_id":        "test-user-123",
		}, nil)

	c, rec := newTestContext(t, "/analyze/movement", movementRequestBody)
	err := h.AnalyzeMovement(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["abnormal_speed"])
	assert.Equal(t, float64(6), response["risk_level"])
	assert.Equal(t, "test-user-123", response["user_id"])
}

func TestAnalyzeMovement_MissingUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the usecase must never be reached
	mockMovementUC := mocks.NewMockMovementUC(ctrl)
	mockRouteSafetyUC := mocks.NewMockRouteSafetyUC(ctrl)
	h := NewAnalysisHandler(mockMovementUC, mockRouteSafetyUC)

	body := `{"historical_data": [], "current_data": {"latitude": 40.0, "longitude": -74.0}}`
	c, rec := newTestContext(t, "/analyze/movement", body)
	err := h.AnalyzeMovement(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response, "detail")
}

func TestAnalyzeMovement_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMovementUC := mocks.NewMockMovementUC(ctrl)
	mockRouteSafetyUC := mocks.NewMockRouteSafetyUC(ctrl)
	h := NewAnalysisHandler(mockMovementUC, mockRouteSafetyUC)

	c, rec := newTestContext(t, "/analyze/movement", `{invalid_json}`)
	err := h.AnalyzeMovement(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAnalyzeMovement_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMovementUC := mocks.NewMockMovementUC(ctrl)
	mockRouteSafetyUC := mocks.NewMockRouteSafetyUC(ctrl)
	h := NewAnalysisHandler(mockMovementUC, mockRouteSafetyUC)

	mockMovementUC.EXPECT().
		AnalyzeMovement(gomock.Any(), gomock.Any(), gomock.Any(), "test-user-123").
		Return(nil, errors.New("unexpected state"))

	c, rec := newTestContext(t, "/analyze/movement", movementRequestBody)
	err := h.AnalyzeMovement(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Analysis error: unexpected state", response["detail"])
}

func TestAnalyzeMovement_BackendFailureStillReturns200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Wire the real usecase with a failing AI client: the HTTP layer must
	// observe a fallback result, never a backend failure.
	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		GetAnalysis(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("backend unreachable"))

	movementUC := usecase.NewMovementUC(mockClient, nil)
	h := NewAnalysisHandler(movementUC, nil)

	c, rec := newTestContext(t, "/analyze/movement", movementRequestBody)
	err := h.AnalyzeMovement(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["is_fallback"])
	assert.Equal(t, true, response["abnormal_speed"])
	assert.Equal(t, float64(7), response["risk_level"])
}

func TestAnalyzeRouteSafety_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMovementUC := mocks.NewMockMovementUC(ctrl)
	mockRouteSafetyUC := mocks.NewMockRouteSafetyUC(ctrl)
	h := NewAnalysisHandler(mockMovementUC, mockRouteSafetyUC)

	mockRouteSafetyUC.EXPECT().
		AnalyzeRouteSafety(gomock.Any(), gomock.Any(), gomock.Any(), "afternoon", "test-user-123").
		Return(map[string]interface{}{
			"safety_score": 7,
			"user_id":      "test-user-123",
		}, nil)

	c, rec := newTestContext(t, "/analyze/route-safety", routeRequestBody)
	err := h.AnalyzeRouteSafety(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, float64(7), response["safety_score"])
}

func TestAnalyzeRouteSafety_MissingUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMovementUC := mocks.NewMockMovementUC(ctrl)
	mockRouteSafetyUC := mocks.NewMockRouteSafetyUC(ctrl)
	h := NewAnalysisHandler(mockMovementUC, mockRouteSafetyUC)

	body := `{"route_points": [], "crime_data": [], "time_of_day": "afternoon"}`
	c, rec := newTestContext(t, "/analyze/route-safety", body)
	err := h.AnalyzeRouteSafety(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response, "detail")
}

func TestAnalyzeRouteSafety_BackendFailureStillReturns200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		GetAnalysis(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("backend unreachable"))

	routeSafetyUC := usecase.NewRouteSafetyUC(mockClient, nil)
	h := NewAnalysisHandler(nil, routeSafetyUC)

	c, rec := newTestContext(t, "/analyze/route-safety", routeRequestBody)
	err := h.AnalyzeRouteSafety(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["is_fallback"])
	// 1 incident during the day: 10 - 1 = 9
	assert.Equal(t, float64(9), response["safety_score"])
}
