package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

const maxUserAgentLen = 512

// Details is the free-form payload attached to an admin action. Values must
// be primitives once sanitized.
type Details map[string]any

// AdminActionRequest describes one administrative action before evaluation.
type AdminActionRequest struct {
	ActorID    string  `json:"admin_id" validate:"required,max=128,nomarkup"`
	ActionType string  `json:"action_type" validate:"required,max=64,nomarkup"`
	TargetType string  `json:"target_type" validate:"omitempty,max=64,nomarkup"`
	TargetID   string  `json:"target_id" validate:"omitempty,max=128,nomarkup"`
	Details    Details `json:"details"`
	IPAddress  string  `json:"ip_address" validate:"omitempty,ip"`
	UserAgent  string  `json:"user_agent" validate:"omitempty,max=512"`
}

func (r *AdminActionRequest) Normalize() {
	r.ActorID = strings.TrimSpace(r.ActorID)
	r.ActionType = strings.ToLower(strings.TrimSpace(r.ActionType))
	r.TargetType = strings.ToLower(strings.TrimSpace(r.TargetType))
	r.TargetID = strings.TrimSpace(r.TargetID)
	r.IPAddress = strings.TrimSpace(r.IPAddress)
	r.UserAgent = truncateRunes(strings.TrimSpace(r.UserAgent), maxUserAgentLen)
}

func (r *AdminActionRequest) Validate() error {
	r.Normalize()
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// ToAuditRecord builds the record persisted for this request. ID and
// CreatedAt are assigned by the repository.
func (r *AdminActionRequest) ToAuditRecord(details Details, isAllowed bool, reason string) *AuditRecord {
	if details == nil {
		details = Details{}
	}
	return &AuditRecord{
		ActorID:    r.ActorID,
		ActionType: r.ActionType,
		TargetType: r.TargetType,
		TargetID:   r.TargetID,
		Details:    details,
		IPAddress:  r.IPAddress,
		UserAgent:  r.UserAgent,
		IsAllowed:  isAllowed,
		Reason:     reason,
	}
}

// AuditRecord is an append-only audit entry. Records are never updated or
// deleted after insertion.
type AuditRecord struct {
	ID         string    `bson:"_id" json:"id"`
	ActorID    string    `bson:"admin_id" json:"admin_id"`
	ActionType string    `bson:"action_type" json:"action_type"`
	TargetType string    `bson:"target_type" json:"target_type"`
	TargetID   string    `bson:"target_id" json:"target_id"`
	Details    Details   `bson:"details" json:"details"`
	IPAddress  string    `bson:"ip_address" json:"ip_address"`
	UserAgent  string    `bson:"user_agent" json:"user_agent"`
	IsAllowed  bool      `bson:"is_allowed" json:"is_allowed"`
	Reason     string    `bson:"reason" json:"reason"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
