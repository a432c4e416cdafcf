package model

import "strings"

// ValidateEditReq is the body of POST /admin/edits/validate.
type ValidateEditReq struct {
	TargetID   string `json:"target_id" validate:"required,max=128,nomarkup"`
	TargetRole string `json:"target_role" validate:"required,role"`
}

func (r *ValidateEditReq) Validate() error {
	r.TargetID = strings.TrimSpace(r.TargetID)
	r.TargetRole = strings.ToLower(strings.TrimSpace(r.TargetRole))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// GuardActionReq is the body of POST /admin/actions. TargetRole is required
// for actions whose target is a principal; the catalog decides which those are.
type GuardActionReq struct {
	ActionType string  `json:"action_type" validate:"required,max=64,nomarkup"`
	TargetType string  `json:"target_type" validate:"omitempty,max=64,nomarkup"`
	TargetID   string  `json:"target_id" validate:"omitempty,max=128,nomarkup"`
	TargetRole string  `json:"target_role" validate:"omitempty,role"`
	Details    Details `json:"details"`
}

func (r *GuardActionReq) Validate() error {
	r.ActionType = strings.ToLower(strings.TrimSpace(r.ActionType))
	r.TargetType = strings.ToLower(strings.TrimSpace(r.TargetType))
	r.TargetID = strings.TrimSpace(r.TargetID)
	r.TargetRole = strings.ToLower(strings.TrimSpace(r.TargetRole))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// LogAdminActionReq is the body of POST /audit/logs. The actor is always the
// authenticated caller.
type LogAdminActionReq struct {
	ActionType string  `json:"action_type" validate:"required,max=64,nomarkup"`
	TargetType string  `json:"target_type" validate:"omitempty,max=64,nomarkup"`
	TargetID   string  `json:"target_id" validate:"omitempty,max=128,nomarkup"`
	Details    Details `json:"details"`
	IsAllowed  bool    `json:"is_allowed"`
	Reason     string  `json:"reason" validate:"omitempty,max=512"`
}

func (r *LogAdminActionReq) Validate() error {
	r.ActionType = strings.ToLower(strings.TrimSpace(r.ActionType))
	r.TargetType = strings.ToLower(strings.TrimSpace(r.TargetType))
	r.TargetID = strings.TrimSpace(r.TargetID)
	r.Reason = strings.TrimSpace(r.Reason)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// GetRecentActionsReq binds GET /audit/logs?limit=N. Zero means the
// configured default.
type GetRecentActionsReq struct {
	Limit int `query:"limit" validate:"omitempty,min=0"`
}

func (r *GetRecentActionsReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// GetRecentActionsResp wraps the audit read path.
type GetRecentActionsResp struct {
	Data  []*AuditRecord `json:"data"`
	Limit int            `json:"limit"`
}
