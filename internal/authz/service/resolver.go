package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"adminguard/internal/authz/model"
	"adminguard/internal/authz/repository"
)

// Resolution is the resolved role of a principal.
type Resolution struct {
	Role         model.Role
	IsSuperAdmin bool
	Profile      *model.Profile
}

// IsAdmin reports whether the principal may use admin functionality.
func (r *Resolution) IsAdmin() bool {
	return r.Role.IsAdmin() || r.IsSuperAdmin
}

// RoleResolver loads a principal's role and super-admin flag.
type RoleResolver struct {
	Profiles repository.ProfileRepository
}

func NewRoleResolver(profiles repository.ProfileRepository) *RoleResolver {
	return &RoleResolver{Profiles: profiles}
}

// Resolve returns ErrUnauthenticated when no profile matches principalID,
// ErrUnknownRole when the stored role is not recognised, and a wrapped
// lookup error otherwise.
func (r *RoleResolver) Resolve(ctx context.Context, principalID string) (*Resolution, error) {
	principalID = strings.TrimSpace(principalID)
	if principalID == "" {
		return nil, ErrUnauthenticated
	}

	profile, err := r.Profiles.GetProfile(ctx, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("profile lookup: %w", err)
	}
	if profile == nil {
		return nil, ErrUnauthenticated
	}

	role, err := model.ParseRole(profile.Role)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Role:         role,
		IsSuperAdmin: profile.IsSuperAdmin || role == model.RoleSuperAdmin,
		Profile:      profile,
	}, nil
}
