package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"accountd/internal/delivery/http/response"
)

// Home is a simple handler to check if the service is up.
func Home(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Server running")
}

// RouteCheck confirms the account route group is mounted.
func RouteCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "User route working")
}
