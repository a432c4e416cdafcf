package model

import "time"

// Profile is the persisted principal record. Role is kept as the raw stored
// string; RoleResolver turns it into a Role.
type Profile struct {
	ID           string    `bson:"_id" json:"id"`
	Role         string    `bson:"role" json:"role"`
	IsSuperAdmin bool      `bson:"is_super_admin" json:"is_super_admin"`
	FullName     string    `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Status       string    `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt    time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt    time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
