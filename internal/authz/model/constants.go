package model

// Messages surfaced to callers in decisions and log results.
const (
	MsgNotAuthenticated   = "User not authenticated"
	MsgInsufficientPerms  = "Insufficient permissions"
	MsgCannotEditAdmins   = "Cannot edit other administrators"
	MsgInvalidInput       = "Invalid input"
	MsgAuditUnavailable   = "Audit log unavailable"
	MsgAllowed            = "Allowed"
	MsgTargetNotFound     = "Target user not found"
	MsgSuperAdminOverride = "Allowed by super admin"
)

// Action types
const (
	ActionEditUser      = "edit_user"
	ActionDeleteUser    = "delete_user"
	ActionChangeRole    = "change_role"
	ActionUserUpdate    = "user_update"
	ActionApproveHours  = "approve_hours"
	ActionRejectHours   = "reject_hours"
	ActionCreateChannel = "create_channel"
	ActionDeleteChannel = "delete_channel"
)

// Target types
const (
	TargetTypeUser    = "user"
	TargetTypeHours   = "hours"
	TargetTypeChannel = "channel"
)

// Audit read limits used when no configuration is supplied.
const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 500
)
