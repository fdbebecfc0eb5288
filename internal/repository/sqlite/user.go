package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"micronotes/internal/apperror"
	"micronotes/internal/model"
	"micronotes/internal/repository"
)

// UserStore implements repository.UserRepository on SQLite.
type UserStore struct {
	db *DB
}

var _ repository.UserRepository = (*UserStore)(nil)

// Create inserts a new user and fills in the assigned id.
//
// Duplicate emails surface as apperror.ErrConflict whether they are caught
// by the caller's pre-check or by the UNIQUE constraint losing a race.
func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	result, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO users (email, password_hash) VALUES (?, ?)`,
		user.Email,
		user.PasswordHash,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperror.Conflict("email already in use")
		}
		return fmt.Errorf("sqlite: creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetByEmail looks up a user by exact email. Callers canonicalize first.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := s.db.conn.QueryRowContext(ctx,
		`SELECT id, email, password_hash FROM users WHERE email = ?`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("sqlite: getting user by email: %w", err)
	}

	return &u, nil
}

// GetByID looks up a user by id.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User

	err := s.db.conn.QueryRowContext(ctx,
		`SELECT id, email, password_hash FROM users WHERE id = ?`,
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("sqlite: getting user %d: %w", id, err)
	}

	return &u, nil
}
