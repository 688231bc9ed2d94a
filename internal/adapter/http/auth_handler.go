package http

import (
	"net/http"

	"loanintake-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ gate *auth.Gate }

func NewAuthHandler(gate *auth.Gate) *AuthHandler { return &AuthHandler{gate: gate} }

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	ok, err := h.gate.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to persist session"})
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      h.gate.Username(),
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.gate.Logout(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to clear session"})
	}
	return c.JSON(http.StatusOK, map[string]any{"authenticated": false})
}

func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": h.gate.IsAuthenticated(),
		"username":      h.gate.Username(),
	})
}
