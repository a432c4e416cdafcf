package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a stored or submitted role string is not
// one of the known roles.
var ErrUnknownRole = errors.New("unknown role")

// Role is the closed set of principal roles.
type Role string

const (
	RoleStudent    Role = "student"
	RoleTeacher    Role = "teacher"
	RoleIntern     Role = "intern"
	RoleParent     Role = "parent"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

var knownRoles = map[Role]bool{
	RoleStudent:    true,
	RoleTeacher:    true,
	RoleIntern:     true,
	RoleParent:     true,
	RoleAdmin:      true,
	RoleSuperAdmin: true,
}

// ParseRole normalizes s and maps it onto a known Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !knownRoles[r] {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	return knownRoles[r]
}

// IsAdmin reports whether the role grants access to admin functionality.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (r Role) String() string {
	return string(r)
}
