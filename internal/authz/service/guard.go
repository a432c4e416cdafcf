package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"adminguard/internal/authz/model"
	"adminguard/internal/authz/policy"
	"adminguard/internal/authz/util"
)

// Guard evaluates an admin action and records the outcome. Each request
// that reaches evaluation produces exactly one audit record; if that record
// cannot be written the action is denied.
type Guard struct {
	Engine  *AccessDecisionEngine
	Audit   *AuditLogger
	Catalog *policy.Catalog
	Logger  *slog.Logger
}

func NewGuard(engine *AccessDecisionEngine, audit *AuditLogger, catalog *policy.Catalog) *Guard {
	return &Guard{Engine: engine, Audit: audit, Catalog: catalog, Logger: util.GetLogger()}
}

// Authorize runs Requested -> Evaluated -> Logged. claimedTargetRole is only
// used when the target has no stored profile.
func (g *Guard) Authorize(ctx context.Context, req model.AdminActionRequest, claimedTargetRole string) model.AccessDecision {
	if err := prepareRequest(&req); err != nil {
		return model.Deny(model.MsgInvalidInput + ": " + err.Error())
	}
	if p, ok := g.Catalog.Lookup(req.ActionType); ok && req.TargetType == "" {
		req.TargetType = p.TargetType
	}

	decision := g.evaluate(ctx, req, claimedTargetRole)

	result := g.Audit.LogAdminAction(ctx, req, decision.Allowed(), decision.Reason())
	if !result.Success {
		return model.AccessDecision{
			Success:      false,
			IsAdmin:      decision.IsAdmin,
			IsSuperAdmin: decision.IsSuperAdmin,
			Error:        model.MsgAuditUnavailable + ": " + result.Error,
		}
	}
	return decision
}

func (g *Guard) evaluate(ctx context.Context, req model.AdminActionRequest, claimedTargetRole string) model.AccessDecision {
	if p, ok := g.Catalog.Lookup(req.ActionType); ok && p.TargetType != "" && req.TargetType != p.TargetType {
		d := model.Deny(fmt.Sprintf("%s: target_type %q does not apply to %s", model.MsgInvalidInput, req.TargetType, req.ActionType))
		return g.denyForTarget(ctx, req.ActorID, d)
	}

	if g.Catalog.CheckFor(req.ActionType) != policy.CheckAdminEdit {
		return g.Engine.ValidateAdminAccess(ctx, req.ActorID)
	}

	targetRole, failed := g.targetRole(ctx, req.TargetID, claimedTargetRole)
	if failed != nil {
		return g.denyForTarget(ctx, req.ActorID, *failed)
	}
	return g.Engine.ValidateAdminEdit(ctx, req.ActorID, req.TargetID, targetRole)
}

// denyForTarget returns d only once the actor is known to be an admin, so a
// non-admin is always told about its own privileges first.
func (g *Guard) denyForTarget(ctx context.Context, actorID string, d model.AccessDecision) model.AccessDecision {
	access := g.Engine.ValidateAdminAccess(ctx, actorID)
	if !access.Success {
		return access
	}
	d.IsAdmin = access.IsAdmin
	d.IsSuperAdmin = access.IsSuperAdmin
	return d
}

// targetRole prefers the stored role of the target over what the caller
// claims.
func (g *Guard) targetRole(ctx context.Context, targetID, claimed string) (model.Role, *model.AccessDecision) {
	if targetID == "" {
		d := model.Deny(model.MsgInvalidInput + ": target_id is required")
		return "", &d
	}

	target, err := g.Engine.Resolver.Resolve(ctx, targetID)
	switch {
	case err == nil:
		if claimed != "" && claimed != target.Role.String() {
			g.logger().Warn("claimed target role differs from stored role",
				"target_id", targetID,
				"claimed_role", claimed,
				"stored_role", target.Role,
			)
		}
		if target.IsSuperAdmin {
			return model.RoleSuperAdmin, nil
		}
		return target.Role, nil
	case errors.Is(err, ErrUnauthenticated):
		if claimed == "" {
			d := model.Deny(model.MsgTargetNotFound)
			return "", &d
		}
		role, perr := model.ParseRole(claimed)
		if perr != nil {
			d := model.Deny(model.MsgInvalidInput + ": " + perr.Error())
			return "", &d
		}
		return role, nil
	default:
		d := model.Deny(err.Error())
		return "", &d
	}
}

func (g *Guard) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return util.GetLogger()
}
