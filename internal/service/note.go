package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"micronotes/internal/apperror"
	"micronotes/internal/model"
	"micronotes/internal/repository"
)

// MaxTitleLength bounds note titles; bodies are unbounded.
const MaxTitleLength = 200

// NoteService implements owner-scoped note CRUD.
//
// Every method takes the owner id from the verified token subject, already
// resolved by the handler. A note that exists but belongs to someone else is
// reported as not found, never as forbidden, so ownership mismatches cannot
// be used to probe for other users' note ids.
type NoteService struct {
	notes  repository.NoteRepository
	logger *slog.Logger
}

// NewNoteService wires a NoteService from its dependencies.
func NewNoteService(notes repository.NoteRepository, logger *slog.Logger) *NoteService {
	return &NoteService{
		notes:  notes,
		logger: logger,
	}
}

// List returns all of the owner's notes, newest first.
func (s *NoteService) List(ctx context.Context, ownerID int64) ([]model.Note, error) {
	notes, err := s.notes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service/note: listing notes: %w", err)
	}
	return notes, nil
}

// Create validates and persists a new note owned by ownerID.
func (s *NoteService) Create(ctx context.Context, ownerID int64, title, body string) (*model.Note, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	if title == "" || body == "" {
		return nil, apperror.ValidationFailed("title", "title and body required")
	}
	if len(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or fewer", MaxTitleLength))
	}

	note := &model.Note{
		OwnerID: ownerID,
		Title:   title,
		Body:    body,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("service/note: creating note: %w", err)
	}

	s.logger.Info("note created",
		slog.Int64("noteID", note.ID),
		slog.Int64("ownerID", ownerID),
	)

	return note, nil
}

// Update applies a partial merge: an absent or empty field keeps the
// existing value; present fields are trimmed before storage. Fetch first,
// then persist the new state — no in-place dirty tracking.
func (s *NoteService) Update(ctx context.Context, ownerID, id int64, title, body string) (*model.Note, error) {
	note, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if title = strings.TrimSpace(title); title != "" {
		if len(title) > MaxTitleLength {
			return nil, apperror.ValidationFailed("title",
				fmt.Sprintf("title must be %d characters or fewer", MaxTitleLength))
		}
		note.Title = title
	}
	if body = strings.TrimSpace(body); body != "" {
		note.Body = body
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("service/note: updating note %d: %w", id, err)
	}

	s.logger.Info("note updated",
		slog.Int64("noteID", note.ID),
		slog.Int64("ownerID", ownerID),
	)

	return note, nil
}

// Delete removes the note after the same ownership check as Update.
func (s *NoteService) Delete(ctx context.Context, ownerID, id int64) error {
	note, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, note.ID); err != nil {
		return fmt.Errorf("service/note: deleting note %d: %w", id, err)
	}

	s.logger.Info("note deleted",
		slog.Int64("noteID", id),
		slog.Int64("ownerID", ownerID),
	)

	return nil
}

// loadOwned fetches a note and enforces ownership. Absent note and
// ownership mismatch return the same not-found error.
func (s *NoteService) loadOwned(ctx context.Context, ownerID, id int64) (*model.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.OwnerID != ownerID {
		return nil, apperror.NotFound("not found")
	}
	return note, nil
}
