package handler

import (
	"net/http"

	"adminguard/internal/authz/service"

	"github.com/labstack/echo/v4"
)

// HeaderCallerID carries the authenticated principal id set by the gateway.
const HeaderCallerID = "x-user-id"

type AuthzHandler struct {
	Service service.AuthzService
}

func NewAuthzHandler(s service.AuthzService) *AuthzHandler {
	return &AuthzHandler{Service: s}
}

func (h *AuthzHandler) extractCallerID(c echo.Context) (string, error) {
	return callerID(c)
}

func callerID(c echo.Context) (string, error) {
	id := c.Request().Header.Get(HeaderCallerID)
	if id == "" {
		return "", service.ErrUnauthenticated
	}
	return id, nil
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
