package service

import (
	"context"
	"errors"
	"testing"

	"adminguard/internal/authz/model"
	"adminguard/internal/authz/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEngine(profiles *MockProfileRepository) *AccessDecisionEngine {
	return NewAccessDecisionEngine(NewRoleResolver(profiles))
}

func TestValidateAdminAccess(t *testing.T) {
	t.Run("admin is granted access", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "a1").Return(profile("a1", model.RoleAdmin, false), nil)

		d := newEngine(profiles).ValidateAdminAccess(context.Background(), "a1")
		assert.True(t, d.Success)
		assert.True(t, d.IsAdmin)
		assert.False(t, d.IsSuperAdmin)
		assert.Empty(t, d.Error)
	})

	t.Run("super admin is granted access with flag", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "s1").Return(profile("s1", model.RoleSuperAdmin, true), nil)

		d := newEngine(profiles).ValidateAdminAccess(context.Background(), "s1")
		assert.True(t, d.Success)
		assert.True(t, d.IsAdmin)
		assert.True(t, d.IsSuperAdmin)
	})

	t.Run("intern is denied with insufficient permissions", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "i1").Return(profile("i1", model.RoleIntern, false), nil)

		d := newEngine(profiles).ValidateAdminAccess(context.Background(), "i1")
		assert.False(t, d.Success)
		assert.False(t, d.IsAdmin)
		assert.Contains(t, d.Error, "Insufficient permissions")
	})

	t.Run("every non admin role is denied", func(t *testing.T) {
		for _, role := range []model.Role{model.RoleStudent, model.RoleTeacher, model.RoleIntern, model.RoleParent} {
			profiles := new(MockProfileRepository)
			profiles.On("GetProfile", mock.Anything, "p").Return(profile("p", role, false), nil)

			d := newEngine(profiles).ValidateAdminAccess(context.Background(), "p")
			assert.False(t, d.Success, role)
			assert.False(t, d.IsAdmin, role)
		}
	})

	t.Run("unknown principal is not authenticated", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		d := newEngine(profiles).ValidateAdminAccess(context.Background(), "ghost")
		assert.False(t, d.Success)
		assert.Contains(t, d.Error, "not authenticated")
	})

	t.Run("lookup failure is returned as data", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "a1").Return(nil, errors.New("network unreachable"))

		d := newEngine(profiles).ValidateAdminAccess(context.Background(), "a1")
		assert.False(t, d.Success)
		assert.Contains(t, d.Error, "network unreachable")
		assert.NotContains(t, d.Error, "not authenticated")
	})

	t.Run("unknown stored role is denied", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "x").Return(&model.Profile{ID: "x", Role: "root"}, nil)

		d := newEngine(profiles).ValidateAdminAccess(context.Background(), "x")
		assert.False(t, d.Success)
		assert.Contains(t, d.Error, "Insufficient permissions")
	})
}

func TestValidateAdminEdit(t *testing.T) {
	t.Run("plain admin cannot edit another admin", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "a1").Return(profile("a1", model.RoleAdmin, false), nil)

		d := newEngine(profiles).ValidateAdminEdit(context.Background(), "a1", "a2", model.RoleAdmin)
		assert.False(t, d.Success)
		assert.False(t, d.CanEdit)
		assert.Equal(t, "Cannot edit other administrators", d.Error)
	})

	t.Run("plain admin cannot edit a super admin", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "a1").Return(profile("a1", model.RoleAdmin, false), nil)

		d := newEngine(profiles).ValidateAdminEdit(context.Background(), "a1", "s1", model.RoleSuperAdmin)
		assert.False(t, d.CanEdit)
		assert.Equal(t, model.MsgCannotEditAdmins, d.Error)
	})

	t.Run("plain admin editing own admin record is denied", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "a1").Return(profile("a1", model.RoleAdmin, false), nil)

		d := newEngine(profiles).ValidateAdminEdit(context.Background(), "a1", "a1", model.RoleAdmin)
		assert.False(t, d.CanEdit)
		assert.Equal(t, model.MsgCannotEditAdmins, d.Error)
	})

	t.Run("super admin can edit any role", func(t *testing.T) {
		for _, target := range []model.Role{model.RoleAdmin, model.RoleSuperAdmin, model.RoleIntern, model.RoleStudent, model.RoleParent, model.RoleTeacher} {
			profiles := new(MockProfileRepository)
			profiles.On("GetProfile", mock.Anything, "s1").Return(profile("s1", model.RoleSuperAdmin, true), nil)

			d := newEngine(profiles).ValidateAdminEdit(context.Background(), "s1", "t1", target)
			assert.True(t, d.Success, target)
			assert.True(t, d.CanEdit, target)
			assert.True(t, d.IsSuperAdmin, target)
		}
	})

	t.Run("admin role with super admin flag overrides protection", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "a1").Return(profile("a1", model.RoleAdmin, true), nil)

		d := newEngine(profiles).ValidateAdminEdit(context.Background(), "a1", "a2", model.RoleAdmin)
		assert.True(t, d.Success)
		assert.True(t, d.CanEdit)
	})

	t.Run("plain admin can edit non admin roles", func(t *testing.T) {
		for _, target := range []model.Role{model.RoleIntern, model.RoleStudent, model.RoleTeacher, model.RoleParent} {
			profiles := new(MockProfileRepository)
			profiles.On("GetProfile", mock.Anything, "a1").Return(profile("a1", model.RoleAdmin, false), nil)

			d := newEngine(profiles).ValidateAdminEdit(context.Background(), "a1", "u1", target)
			assert.True(t, d.Success, target)
			assert.True(t, d.CanEdit, target)
			assert.Empty(t, d.Error, target)
		}
	})

	t.Run("non admin actor is denied", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "t1").Return(profile("t1", model.RoleTeacher, false), nil)

		d := newEngine(profiles).ValidateAdminEdit(context.Background(), "t1", "u1", model.RoleStudent)
		assert.False(t, d.Success)
		assert.False(t, d.CanEdit)
		assert.Equal(t, model.MsgInsufficientPerms, d.Error)
	})

	t.Run("unauthenticated actor is denied", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		d := newEngine(profiles).ValidateAdminEdit(context.Background(), "ghost", "u1", model.RoleStudent)
		assert.False(t, d.Success)
		assert.Equal(t, model.MsgNotAuthenticated, d.Error)
	})

	t.Run("invalid target role is rejected", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "s1").Return(profile("s1", model.RoleSuperAdmin, true), nil)

		d := newEngine(profiles).ValidateAdminEdit(context.Background(), "s1", "u1", model.Role("wizard"))
		assert.False(t, d.Success)
		assert.False(t, d.CanEdit)
		assert.Equal(t, model.MsgInvalidInput, d.Error)
	})

	t.Run("empty target id is rejected", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "a1").Return(profile("a1", model.RoleAdmin, false), nil)

		d := newEngine(profiles).ValidateAdminEdit(context.Background(), "a1", "", model.RoleIntern)
		assert.False(t, d.Success)
		assert.Equal(t, model.MsgInvalidInput, d.Error)
	})

	t.Run("non admin with invalid target is told about privileges first", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "i1").Return(profile("i1", model.RoleIntern, false), nil)
		engine := newEngine(profiles)

		d := engine.ValidateAdminEdit(context.Background(), "i1", "", model.RoleStudent)
		assert.False(t, d.Success)
		assert.Equal(t, model.MsgInsufficientPerms, d.Error)

		d = engine.ValidateAdminEdit(context.Background(), "i1", "u1", model.Role("wizard"))
		assert.False(t, d.Success)
		assert.Equal(t, model.MsgInsufficientPerms, d.Error)
	})

	t.Run("repeated evaluation gives the same decision", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetProfile", mock.Anything, "a1").Return(profile("a1", model.RoleAdmin, false), nil)
		engine := newEngine(profiles)

		first := engine.ValidateAdminEdit(context.Background(), "a1", "a2", model.RoleAdmin)
		second := engine.ValidateAdminEdit(context.Background(), "a1", "a2", model.RoleAdmin)
		assert.Equal(t, first, second)
	})
}
