package utils

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the error body shape for this API
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse sends a 422 Unprocessable Entity response for
// payloads that fail required-field or type checks
func ValidationErrorResponse(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorDetail{Detail: detail})
}

// AnalysisErrorResponse sends a 500 Internal Server Error response for
// unexpected errors escaping the analysis service
func AnalysisErrorResponse(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, ErrorDetail{
		Detail: fmt.Sprintf("Analysis error: %s", err),
	})
}
