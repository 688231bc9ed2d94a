package middleware

import (
	"net/http"

	"loanintake-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// RequireLogin gates the manager routes on the process-wide auth gate.
func RequireLogin(gate *auth.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !gate.IsAuthenticated() {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			return next(c)
		}
	}
}
