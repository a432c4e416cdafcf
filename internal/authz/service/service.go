package service

import (
	"context"
	"fmt"

	"adminguard/internal/authz/model"
	"adminguard/internal/authz/policy"
	"adminguard/internal/authz/repository"
)

type AuthzService interface {
	ValidateAdminAccess(ctx context.Context, principalID string) model.AccessDecision
	ValidateAdminEdit(ctx context.Context, actorID, targetID string, targetRole model.Role) model.AccessDecision
	AuthorizeAction(ctx context.Context, req model.AdminActionRequest, claimedTargetRole string) model.AccessDecision
	LogAdminAction(ctx context.Context, req model.AdminActionRequest, isAllowed bool, reason string) model.LogResult
	// GetRecentActions also returns the limit actually applied
	GetRecentActions(ctx context.Context, limit int) ([]*model.AuditRecord, int, error)
}

// Options tunes the audit read path. Zero values use model defaults.
type Options struct {
	AuditDefaultLimit int
	AuditMaxLimit     int
}

type Service struct {
	Resolver *RoleResolver
	Engine   *AccessDecisionEngine
	Audit    *AuditLogger
	Guard    *Guard
}

func NewService(profiles repository.ProfileRepository, audits repository.AuditRepository, opts Options) (*Service, error) {
	catalog, err := policy.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize action catalog: %w", err)
	}

	if opts.AuditMaxLimit == 0 {
		opts.AuditMaxLimit = model.MaxRecentLimit
	}

	resolver := NewRoleResolver(profiles)
	engine := NewAccessDecisionEngine(resolver)
	audit := NewAuditLogger(audits, opts.AuditDefaultLimit, opts.AuditMaxLimit)

	return &Service{
		Resolver: resolver,
		Engine:   engine,
		Audit:    audit,
		Guard:    NewGuard(engine, audit, catalog),
	}, nil
}

func (s *Service) ValidateAdminAccess(ctx context.Context, principalID string) model.AccessDecision {
	return s.Engine.ValidateAdminAccess(ctx, principalID)
}

func (s *Service) ValidateAdminEdit(ctx context.Context, actorID, targetID string, targetRole model.Role) model.AccessDecision {
	return s.Engine.ValidateAdminEdit(ctx, actorID, targetID, targetRole)
}

func (s *Service) AuthorizeAction(ctx context.Context, req model.AdminActionRequest, claimedTargetRole string) model.AccessDecision {
	return s.Guard.Authorize(ctx, req, claimedTargetRole)
}

func (s *Service) LogAdminAction(ctx context.Context, req model.AdminActionRequest, isAllowed bool, reason string) model.LogResult {
	return s.Audit.LogAdminAction(ctx, req, isAllowed, reason)
}

func (s *Service) GetRecentActions(ctx context.Context, limit int) ([]*model.AuditRecord, int, error) {
	effective := s.Audit.EffectiveLimit(limit)
	records, err := s.Audit.GetRecentActions(ctx, effective)
	if err != nil {
		return nil, effective, err
	}
	return records, effective, nil
}
