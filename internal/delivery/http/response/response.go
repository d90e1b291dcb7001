// Package response defines the envelope every endpoint answers with.
// Handlers never call c.JSON directly; the helpers here keep the shape and
// the request ID correlation consistent across the API.
package response

import (
	"net/http"

	deliverycontext "hivefund/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Response is the unified API envelope. RequestID echoes the X-Request-ID
// assigned to the request so a client report can be matched to server logs.
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`
	Message   string     `json:"message"`
	RequestID string     `json:"request_id,omitempty"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable error code, e.g. "EMAIL_TAKEN",
// alongside an optional human-readable detail string.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(deliverycontext.HeaderXRequestID)
}

// Success writes a successful envelope around the given data.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		RequestID: requestID(c),
		Data:      data,
	})
}

// Fail writes an error envelope with the given business error code.
func Fail(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success:   false,
		Code:      statusCode,
		Message:   message,
		RequestID: requestID(c),
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest rejects malformed parameters.
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Fail(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError rejects a request body that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Fail(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized rejects a request lacking a valid session.
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Fail(c, http.StatusUnauthorized, errorCode, message, "")
}
