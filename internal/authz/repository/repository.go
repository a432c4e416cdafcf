package repository

import (
	"context"
	"errors"

	"adminguard/internal/authz/model"
)

var ErrNotFound = errors.New("record not found")

type ProfileRepository interface {
	// Get a principal profile by id; ErrNotFound when no profile matches
	GetProfile(ctx context.Context, id string) (*model.Profile, error)
}

// AuditRepository is append-only: there are no update or delete methods.
type AuditRepository interface {
	// InsertAuditRecord appends one record, assigning ID and CreatedAt
	InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error
	// FindRecentAuditRecords returns at most limit records, newest first
	FindRecentAuditRecords(ctx context.Context, limit int) ([]*model.AuditRecord, error)
	// EnsureAuditIndexes creates indexes for the read path
	EnsureAuditIndexes(ctx context.Context) error
}
