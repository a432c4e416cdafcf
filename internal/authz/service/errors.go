package service

import (
	"errors"

	"adminguard/internal/authz/model"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrUnknownRole     = model.ErrUnknownRole
)
