package service

import (
	"context"
	"errors"
	"strings"

	"adminguard/internal/authz/model"
)

// AccessDecisionEngine answers whether a principal may use admin
// functionality, and whether it may modify a specific target principal.
// Every outcome is returned as an AccessDecision; nothing here panics or
// returns an error for a denial.
type AccessDecisionEngine struct {
	Resolver *RoleResolver
}

func NewAccessDecisionEngine(resolver *RoleResolver) *AccessDecisionEngine {
	return &AccessDecisionEngine{Resolver: resolver}
}

func (e *AccessDecisionEngine) ValidateAdminAccess(ctx context.Context, principalID string) model.AccessDecision {
	actor, failed := e.resolve(ctx, principalID)
	if failed != nil {
		return *failed
	}

	if !actor.IsAdmin() {
		return model.AccessDecision{Success: false, IsAdmin: false, Error: model.MsgInsufficientPerms}
	}

	return model.AccessDecision{Success: true, IsAdmin: true, IsSuperAdmin: actor.IsSuperAdmin}
}

// ValidateAdminEdit applies, in order: non-admins are denied; the target
// arguments must be valid; super-admins may edit anyone; plain admins may
// edit anyone who is not an admin.
// A plain admin editing their own admin record is covered by the
// admin-to-admin rule and denied.
func (e *AccessDecisionEngine) ValidateAdminEdit(ctx context.Context, actorID, targetID string, targetRole model.Role) model.AccessDecision {
	actor, failed := e.resolve(ctx, actorID)
	if failed != nil {
		return *failed
	}

	if !actor.IsAdmin() {
		return model.AccessDecision{Success: false, Error: model.MsgInsufficientPerms}
	}

	if strings.TrimSpace(targetID) == "" || !targetRole.Valid() {
		return model.AccessDecision{
			Success:      false,
			IsAdmin:      true,
			IsSuperAdmin: actor.IsSuperAdmin,
			Error:        model.MsgInvalidInput,
		}
	}

	if actor.IsSuperAdmin {
		return model.AccessDecision{Success: true, IsAdmin: true, IsSuperAdmin: true, CanEdit: true}
	}

	if targetRole.IsAdmin() {
		return model.AccessDecision{Success: false, IsAdmin: true, CanEdit: false, Error: model.MsgCannotEditAdmins}
	}

	return model.AccessDecision{Success: true, IsAdmin: true, CanEdit: true}
}

func (e *AccessDecisionEngine) resolve(ctx context.Context, principalID string) (*Resolution, *model.AccessDecision) {
	actor, err := e.Resolver.Resolve(ctx, principalID)
	if err == nil {
		return actor, nil
	}

	var d model.AccessDecision
	switch {
	case errors.Is(err, ErrUnauthenticated):
		d = model.Deny(model.MsgNotAuthenticated)
	case errors.Is(err, ErrUnknownRole):
		d = model.Deny(model.MsgInsufficientPerms + ": " + err.Error())
	default:
		d = model.Deny(err.Error())
	}
	return nil, &d
}
