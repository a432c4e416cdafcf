package model

// AccessDecision is returned by every access check. Success is false for both
// policy denials and lookup failures; Error carries the cause.
type AccessDecision struct {
	Success      bool   `json:"success"`
	IsAdmin      bool   `json:"is_admin"`
	IsSuperAdmin bool   `json:"is_super_admin"`
	CanEdit      bool   `json:"can_edit"`
	Error        string `json:"error,omitempty"`
}

// Allowed reports whether the caller may proceed with the mutation.
func (d AccessDecision) Allowed() bool {
	return d.Success
}

// Reason is the justification stored alongside the audit record.
func (d AccessDecision) Reason() string {
	if d.Error != "" {
		return d.Error
	}
	if d.IsSuperAdmin {
		return MsgSuperAdminOverride
	}
	return MsgAllowed
}

// Deny builds a failed decision with the given cause.
func Deny(msg string) AccessDecision {
	return AccessDecision{Success: false, Error: msg}
}
