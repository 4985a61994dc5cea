package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Roles understood by the user API.
const (
	RoleAdmin  = "Admin"
	RoleViewer = "Viewer"
)

// Profile is the non-secret identity shown in the UI: name, user id and role.
// It is stored durably in sqlite, separately from the bearer credential, which
// lives in a short-lived cookie. The two stores can desync if one is cleared
// without the other; consumers must tolerate a missing profile.
type Profile struct {
	bun.BaseModel `bun:"table:profiles,alias:p"`

	ID        string    `bun:"id,pk"`
	UserID    int64     `bun:"user_id,notnull"`
	Name      string    `bun:"name,notnull"`
	Role      string    `bun:"role,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// IsAdmin reports whether the profile carries the Admin role.
func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// UserRecord mirrors a row owned by the user API. The console holds a
// read-only page-sized cache of these; it never patches them in place.
type UserRecord struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
	Role      string `json:"role"`
}

// PageWindow drives the directory fetch. Page is zero-based; the wire
// protocol is one-based and the directory owns the translation.
type PageWindow struct {
	Page int
	Size int
}

// AuditLog captures console-initiated mutations against the user API.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID        int64     `bun:"id,pk,autoincrement"`
	ActorID   int64     `bun:"actor_id,notnull"`
	Action    string    `bun:"action,notnull"`
	TargetID  string    `bun:"target_id,notnull"`
	Detail    string    `bun:"detail"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
