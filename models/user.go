package models

import "time"

// Role classifies the authorization level carried by a user account.
// The gateway treats it as an opaque label: it is stored, embedded into
// responses, and never interpreted beyond the default applied at
// registration time.
type Role string

const (
	// RoleUser is the default role assigned to accounts registered
	// without an explicit role.
	RoleUser Role = "USER"

	// RoleAdmin marks administrative accounts. Assigned out-of-band;
	// registration never escalates to it on its own.
	RoleAdmin Role = "ADMIN"
)

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// Server-assigned at creation time and immutable afterwards.
	ID int64 `json:"id"`

	// Email is the unique, case-sensitive identifier used for lookup
	// during authentication and registration.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is excluded from
	// JSON serialization.
	PasswordHash string `json:"-"`

	// FirstName is the user's given name. Non-sensitive.
	FirstName string `json:"firstName"`

	// LastName is the user's family name. Non-sensitive.
	LastName string `json:"lastName"`

	// Role is the authorization label of the account.
	// Defaults to RoleUser when registration does not specify one.
	Role Role `json:"role"`

	// LastLoginAt records the moment of the last successful password
	// login. Nil until the first login; updated best-effort afterwards.
	LastLoginAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// PublicProjection is the subset of User returned to callers after a
// successful registration. It omits the password hash and any
// server-internal timestamps.
type PublicProjection struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Public returns the registration projection of the user.
func (u User) Public() PublicProjection {
	return PublicProjection{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
