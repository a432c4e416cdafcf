package service

import (
	"context"
	"log/slog"

	"adminguard/internal/authz/model"
	"adminguard/internal/authz/repository"
	"adminguard/internal/authz/sanitize"
	"adminguard/internal/authz/util"
)

// AuditLogger writes one append-only record per call and serves the recent
// actions read path.
type AuditLogger struct {
	Repo         repository.AuditRepository
	DefaultLimit int
	MaxLimit     int
	Logger       *slog.Logger
}

func NewAuditLogger(repo repository.AuditRepository, defaultLimit, maxLimit int) *AuditLogger {
	if defaultLimit <= 0 {
		defaultLimit = model.DefaultRecentLimit
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	return &AuditLogger{
		Repo:         repo,
		DefaultLimit: defaultLimit,
		MaxLimit:     maxLimit,
		Logger:       util.GetLogger(),
	}
}

// LogAdminAction persists req with its outcome. Calling it twice with the
// same payload stores two records. Invalid requests are rejected before any
// write.
func (l *AuditLogger) LogAdminAction(ctx context.Context, req model.AdminActionRequest, isAllowed bool, reason string) model.LogResult {
	if err := prepareRequest(&req); err != nil {
		return model.LogResult{Success: false, Error: model.MsgInvalidInput + ": " + err.Error()}
	}

	details, err := sanitize.Details(req.Details)
	if err != nil {
		return model.LogResult{Success: false, Error: model.MsgInvalidInput + ": " + err.Error()}
	}

	record := req.ToAuditRecord(details, isAllowed, sanitize.String(reason))
	if err := l.Repo.InsertAuditRecord(ctx, record); err != nil {
		l.logger().Error("failed to write audit record",
			"actor_id", record.ActorID,
			"action_type", record.ActionType,
			"error", err,
		)
		return model.LogResult{Success: false, Error: err.Error()}
	}

	l.logger().Info("admin action recorded",
		"audit_id", record.ID,
		"actor_id", record.ActorID,
		"action_type", record.ActionType,
		"target_type", record.TargetType,
		"target_id", record.TargetID,
		"is_allowed", record.IsAllowed,
	)
	return model.LogResult{Success: true}
}

// GetRecentActions returns the newest records first. See EffectiveLimit for
// how limit is interpreted.
func (l *AuditLogger) GetRecentActions(ctx context.Context, limit int) ([]*model.AuditRecord, error) {
	return l.Repo.FindRecentAuditRecords(ctx, l.EffectiveLimit(limit))
}

// EffectiveLimit maps a non-positive limit to the default and caps it at the
// maximum.
func (l *AuditLogger) EffectiveLimit(limit int) int {
	if limit <= 0 {
		return l.DefaultLimit
	}
	if limit > l.MaxLimit {
		return l.MaxLimit
	}
	return limit
}

func (l *AuditLogger) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return util.GetLogger()
}

// prepareRequest strips markup from free text and validates the rest.
// Identifiers are validated, never rewritten, so the record names exactly the
// principals that were evaluated. Guard and AuditLogger both run it, so any
// request that can be evaluated can also be logged.
func prepareRequest(req *model.AdminActionRequest) error {
	req.UserAgent = sanitize.String(req.UserAgent)
	return req.Validate()
}
