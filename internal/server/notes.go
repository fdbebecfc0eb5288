package server

import (
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"micronotes/internal/auth"
	"micronotes/internal/config"
	"micronotes/internal/handler"
	"micronotes/internal/service"
)

// NewNotes builds the notes service. It verifies tokens with the same
// shared secret as the users service and never calls back to it.
//
// Routes:
//
//	GET    /healthz      liveness probe (no auth)
//	GET    /notes        list caller's notes, newest first
//	POST   /notes        create note
//	PUT    /notes/{id}   partial update
//	DELETE /notes/{id}   delete
func NewNotes(cfg config.Config, logger *slog.Logger) (*Server, error) {
	s, err := newServer("notesvc", cfg, logger)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		s.db.Close()
		return nil, fmt.Errorf("creating token service: %w", err)
	}

	noteService := service.NewNoteService(s.db.Notes(), logger)
	noteHandler := handler.NewNoteHandler(noteService, logger)

	s.router.Get("/healthz", handler.HandleHealthz)

	s.router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))
		r.Get("/notes", noteHandler.HandleList)
		r.Post("/notes", noteHandler.HandleCreate)
		r.Put("/notes/{id}", noteHandler.HandleUpdate)
		r.Delete("/notes/{id}", noteHandler.HandleDelete)
	})

	return s, nil
}
