package handler

import (
	"net/http"
	"strings"

	"adminguard/internal/authz/model"

	"github.com/labstack/echo/v4"
)

// PostAuditLog handles POST /audit/logs
func (h *AuthzHandler) PostAuditLog(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req model.LogAdminActionReq
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

	result := h.Service.LogAdminAction(c.Request().Context(), action, req.IsAllowed, req.Reason)
	switch {
	case result.Success:
		return c.JSON(http.StatusCreated, result)
	case strings.HasPrefix(result.Error, model.MsgInvalidInput):
		return c.JSON(http.StatusBadRequest, result)
	default:
		return c.JSON(http.StatusServiceUnavailable, result)
	}
}

// GetAuditLogs handles GET /audit/logs
func (h *AuthzHandler) GetAuditLogs(c echo.Context) error {
	if _, err := h.extractCallerID(c); err != nil {
		return respondError(c, err)
	}

	var req model.GetRecentActionsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters", RequestID: requestID(c)},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(validationError(c, err))
	}

	records, limit, err := h.Service.GetRecentActions(c.Request().Context(), req.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, model.GetRecentActionsResp{Data: records, Limit: limit})
}
