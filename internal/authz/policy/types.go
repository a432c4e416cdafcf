package policy

// Check names the access check an action requires.
type Check string

const (
	// CheckAdminAccess only requires the actor to be an administrator.
	CheckAdminAccess Check = "admin_access"
	// CheckAdminEdit targets another principal and applies the
	// admin-to-admin protection rule.
	CheckAdminEdit Check = "admin_edit"
)

func (c Check) valid() bool {
	return c == CheckAdminAccess || c == CheckAdminEdit
}

// ActionPolicy describes one known action type.
type ActionPolicy struct {
	ActionType string `json:"action_type"`
	TargetType string `json:"target_type"`
	Check      Check  `json:"check"`
}

// CatalogFile is the on-disk shape of policies/actions.json.
type CatalogFile struct {
	DefaultCheck Check           `json:"default_check"`
	Actions      []*ActionPolicy `json:"actions"`
}
