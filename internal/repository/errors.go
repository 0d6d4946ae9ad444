package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrGenreNotFound  = errors.New("genre not found")
	ErrReviewNotFound = errors.New("review not found")

	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateTitle    = errors.New("title already exists")
)

const uniqueViolation = "23505"

// mapUniqueViolation turns a postgres unique-constraint error into the
// matching sentinel, keyed on the constraint name. Any other error is
// passed through unchanged.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "users_email_key":
		return ErrDuplicateEmail
	case "users_username_key":
		return ErrDuplicateUsername
	case "games_title_key":
		return ErrDuplicateTitle
	}
	return err
}
