package handler

import (
	"errors"
	"net/http"

	"adminguard/internal/authz/model"
	"adminguard/internal/authz/service"

	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, model.ErrorResponse) {
	var code string
	var msg string
	var status int

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = model.MsgNotAuthenticated
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
		msg = model.MsgInsufficientPerms
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

func respondError(c echo.Context, err error) error {
	status, body := httpError(err)
	body.Error.RequestID = requestID(c)
	return c.JSON(status, body)
}

func validationError(c echo.Context, err error) (int, model.ErrorResponse) {
	detail := model.FormatValidationError(err)
	if detail == nil {
		detail = &model.ErrorDetail{Code: "bad_request", Message: model.MsgInvalidInput}
	}
	detail.RequestID = requestID(c)
	return http.StatusBadRequest, model.ErrorResponse{Error: *detail}
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
