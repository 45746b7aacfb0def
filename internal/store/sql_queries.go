package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash, first_name, last_name, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, password_hash, first_name, last_name, role, last_login_at, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, first_name, last_name, role, last_login_at, created_at
    FROM users
    WHERE email = $1;`

	deleteUserByEmail = `DELETE FROM users
    WHERE email = $1;`
)

// buildLastLoginUpdate builds the UPDATE statement for the best-effort
// last-login timestamp mutation.
func buildLastLoginUpdate(userID int64, at time.Time) (string, []any, error) {
	return sq.Update("users").
		Set("last_login_at", at).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
