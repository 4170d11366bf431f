package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Body is the wire shape for every response: a message plus an optional user
// view on success, or a single error string on failure.
type Body struct {
	Message string `json:"message,omitempty"`
	User    any    `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success writes a message-only success response.
func Success(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{Message: message})
}

// SuccessWithUser writes a success response carrying a public user view.
func SuccessWithUser(c echo.Context, statusCode int, message string, user any) error {
	return c.JSON(statusCode, Body{Message: message, User: user})
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Body{Error: message})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Conflict 409 error
func Conflict(c echo.Context, message string) error {
	return Error(c, http.StatusConflict, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
