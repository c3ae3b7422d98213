package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNoEmail means the user exists in scanner configuration but has no row
// in the users table. Callers decide whether to skip the user or abort.
var ErrNoEmail = errors.New("no email for user")

type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db}
}

func (r *UserRepo) GetEmail(userID string) (string, error) {
	var email string
	query := `SELECT email FROM users WHERE user = ?`

	err := r.db.Get(&email, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("user %q: %w", userID, ErrNoEmail)
		}
		return "", fmt.Errorf("get email for user %q: %w", userID, err)
	}

	return email, nil
}
