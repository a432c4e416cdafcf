package handler

import (
	"errors"
	"strings"

	"adminguard/internal/authz/model"
	"adminguard/internal/authz/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyDecision holds the admin access decision set by RequireAdmin.
const ContextKeyDecision = "admin_access_decision"

func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, reqID)
		return next(c)
	}
}

// RequireAdmin rejects callers that fail ValidateAdminAccess. Unknown
// callers get 401, non-admins 403 and lookup failures 500.
func RequireAdmin(svc service.AuthzService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := callerID(c)
			if err != nil {
				return respondError(c, err)
			}

			decision := svc.ValidateAdminAccess(c.Request().Context(), id)
			switch {
			case decision.Success:
			case decision.Error == model.MsgNotAuthenticated:
				return respondError(c, service.ErrUnauthenticated)
			case strings.HasPrefix(decision.Error, model.MsgInsufficientPerms):
				return respondError(c, service.ErrForbidden)
			default:
				// profile lookup failed
				return respondError(c, errors.New(decision.Error))
			}

			c.Set(ContextKeyDecision, decision)
			return next(c)
		}
	}
}
