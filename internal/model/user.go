package model

import "time"

// Role is a user's role within the team.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleLead  Role = "lead"
)

// Status is a user's admission state. Only StatusApproved admits a
// user past the status screen.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// User is a registered team member. ExternalID is whatever identity
// the sign-in provider handed us; email is the canonical lookup key.
type User struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"googleId,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	PictureURL string    `json:"profilePicture,omitempty"`
	Role       Role      `json:"role"`
	Status     Status    `json:"status"`
	JoinedAt   time.Time `json:"joinDate"`
}

// RegisterRequest is the sign-in payload. Registration is idempotent
// by email; the handler validates the email itself so every rejection
// carries the same message.
type RegisterRequest struct {
	ExternalID string `json:"googleId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	PictureURL string `json:"profilePicture"`
}

// UserStatusPatch updates status and/or role; nil means leave as is.
type UserStatusPatch struct {
	Status *Status `json:"status"`
	Role   *Role   `json:"role"`
}

// Empty reports whether the patch carries no fields.
func (p UserStatusPatch) Empty() bool {
	return p.Status == nil && p.Role == nil
}
