package store

import (
	"context"
	"time"

	"github.com/akarpenko/fashion-gateway/models"
)

// UserRepository is the credential store contract consumed by the
// authentication engine. All operations are atomic at the database level;
// the engine performs no locking of its own on top of them.
type UserRepository interface {
	// FindByEmail returns the user whose email matches exactly, including
	// the stored password hash. Returns [ErrNoUserWasFound] when no such
	// record exists.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// Create persists a new user record and returns it with the
	// server-assigned fields populated. Returns [ErrEmailAlreadyExists]
	// when the email is already on file.
	Create(ctx context.Context, user models.User) (models.User, error)

	// UpdateLastLogin sets the last-login timestamp of the given user.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error

	// DeleteByEmail removes the user record with the given email. Used
	// only as the compensating action of a failed registration.
	DeleteByEmail(ctx context.Context, email string) error
}
