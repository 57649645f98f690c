package models

import "time"

type SessionStatus string

const (
	StatusChecking         SessionStatus = "checking"
	StatusAuthenticated    SessionStatus = "authenticated"
	StatusNotAuthenticated SessionStatus = "not-authenticated"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Profile is the user record fetched from the backend after a
// successful authentication.
type Profile struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Session is the per-gateway-session authentication state.
type Session struct {
	ID      string        `json:"id"`
	Status  SessionStatus `json:"status"`
	UserID  string        `json:"user_id,omitempty"`
	Token   string        `json:"-"`
	Profile *Profile      `json:"profile,omitempty"`
}

// SessionRecord persists the session so it survives restarts, the same
// way the browser kept its serialized user object in local storage.
type SessionRecord struct {
	ID        string `gorm:"primaryKey"`
	UserID    string
	Token     string
	Status    string
	Role      string
	FullName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
