package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"micronotes/internal/apperror"
	"micronotes/internal/model"
	"micronotes/internal/repository"
)

// NoteStore implements repository.NoteRepository on SQLite.
type NoteStore struct {
	db *DB
}

var _ repository.NoteRepository = (*NoteStore)(nil)

// Create inserts a new note and fills in the assigned id.
func (s *NoteStore) Create(ctx context.Context, note *model.Note) error {
	result, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO notes (owner_id, title, body) VALUES (?, ?, ?)`,
		note.OwnerID,
		note.Title,
		note.Body,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading note id: %w", err)
	}
	note.ID = id

	return nil
}

// GetByID retrieves a note by id regardless of owner. Ownership checks
// happen in the service layer, which masks mismatches as not found.
func (s *NoteStore) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	var n model.Note

	err := s.db.conn.QueryRowContext(ctx,
		`SELECT id, owner_id, title, body FROM notes WHERE id = ?`,
		id,
	).Scan(&n.ID, &n.OwnerID, &n.Title, &n.Body)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("not found")
		}
		return nil, fmt.Errorf("sqlite: getting note %d: %w", id, err)
	}

	return &n, nil
}

// ListByOwner returns the owner's notes, newest first. Ordering by id
// descending is contractual.
func (s *NoteStore) ListByOwner(ctx context.Context, ownerID int64) ([]model.Note, error) {
	rows, err := s.db.conn.QueryContext(ctx,
		`SELECT id, owner_id, title, body FROM notes
		 WHERE owner_id = ?
		 ORDER BY id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing notes for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Body); err != nil {
			return nil, fmt.Errorf("sqlite: scanning note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating notes: %w", err)
	}

	return notes, nil
}

// Update persists the note's title and body.
func (s *NoteStore) Update(ctx context.Context, note *model.Note) error {
	result, err := s.db.conn.ExecContext(ctx,
		`UPDATE notes SET title = ?, body = ? WHERE id = ?`,
		note.Title,
		note.Body,
		note.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating note %d: %w", note.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("not found")
	}

	return nil
}

// Delete removes a note by id.
func (s *NoteStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.conn.ExecContext(ctx,
		`DELETE FROM notes WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting note %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("not found")
	}

	return nil
}
