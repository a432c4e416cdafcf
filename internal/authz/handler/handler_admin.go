package handler

import (
	"net/http"

	"adminguard/internal/authz/model"

	"github.com/labstack/echo/v4"
)

// GetAdminAccess handles GET /admin/access
func (h *AuthzHandler) GetAdminAccess(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		return respondError(c, err)
	}

	decision := h.Service.ValidateAdminAccess(c.Request().Context(), callerID)
	return c.JSON(http.StatusOK, decision)
}

// PostValidateEdit handles POST /admin/edits/validate
func (h *AuthzHandler) PostValidateEdit(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req model.ValidateEditReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body", RequestID: requestID(c)},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(validationError(c, err))
	}

	decision := h.Service.ValidateAdminEdit(c.Request().Context(), callerID, req.TargetID, model.Role(req.TargetRole))
	return c.JSON(http.StatusOK, decision)
}

// PostAdminAction handles POST /admin/actions. The decision is always
// recorded before it is returned.
func (h *AuthzHandler) PostAdminAction(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req model.GuardActionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body", RequestID: requestID(c)},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(validationError(c, err))
	}

	action := model.AdminActionRequest{
		ActorID:    callerID,
		ActionType: req.ActionType,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Details:    req.Details,
		IPAddress:  c.RealIP(),
		UserAgent:  c.Request().UserAgent(),
	}

	decision := h.Service.AuthorizeAction(c.Request().Context(), action, req.TargetRole)
	return c.JSON(http.StatusOK, decision)
}
