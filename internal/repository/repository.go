// Package repository declares the storage interfaces the services depend on.
// The sqlite subpackage provides the concrete implementation; tests supply
// in-memory mocks.
package repository

import (
	"context"

	"micronotes/internal/model"
)

// UserRepository persists user credentials.
//
// Implementations return apperror.ErrConflict from Create when the email is
// already taken, and apperror.ErrNotFound from the lookups when no row
// matches. Email canonicalization is the caller's job; the store persists
// and compares exactly what it is given.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// NoteRepository persists notes scoped by owner.
//
// ListByOwner returns notes ordered by id descending (newest first); the
// ordering is part of the contract, not incidental.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	GetByID(ctx context.Context, id int64) (*model.Note, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Note, error)
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, id int64) error
}
