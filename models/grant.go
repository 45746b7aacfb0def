package models

// GrantType identifies the kind of credential presented to obtain a
// token pair. The dispatch over it is a closed two-way switch: any other
// value is a hard rejection, not a default.
type GrantType string

const (
	// GrantPassword exchanges an email/password pair for tokens.
	GrantPassword GrantType = "password"

	// GrantRefresh exchanges a valid refresh token for a fresh pair.
	GrantRefresh GrantType = "refresh_token"
)

// LoginRequest is the password-grant input.
type LoginRequest struct {
	GrantType GrantType `json:"granty_type"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
}

// RefreshRequest is the refresh-grant input. The refresh token itself
// travels out-of-band (the Refresh-Token header) and is attached by the
// transport layer before the request reaches the engine.
type RefreshRequest struct {
	GrantType    GrantType `json:"granty_type"`
	RefreshToken string    `json:"-"`
}

// RegisterRequest is the registration input. Role is optional and
// defaults to RoleUser.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role,omitempty"`
}
