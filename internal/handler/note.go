package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"micronotes/internal/apperror"
	"micronotes/internal/auth"
	"micronotes/internal/service"
)

// NoteHandler exposes the owner-scoped note CRUD surface.
//
// The owner id for every operation comes from the verified token subject in
// the request context — client-supplied owner fields do not exist in the
// request shapes at all.
type NoteHandler struct {
	notes  *service.NoteService
	logger *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(notes *service.NoteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, logger: logger}
}

// noteRequest is the body of create and update. On update, an absent or
// empty field leaves the stored value unchanged.
type noteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ownerID resolves the authenticated owner from the request context.
func ownerID(r *http.Request) (int64, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(identity.Subject, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// HandleList returns the caller's notes, newest first.
//
// HTTP: GET /notes (token required)
// 200 [{id,title,body}]
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, apperror.Unauthorized("unauthorized"))
		return
	}

	notes, err := h.notes.List(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// HandleCreate persists a new note owned by the caller.
//
// HTTP: POST /notes (token required)
// 201 {id,title,body} | 400 missing title/body
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, apperror.Unauthorized("unauthorized"))
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	note, err := h.notes.Create(r.Context(), owner, req.Title, req.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// HandleUpdate applies a partial update to one of the caller's notes.
//
// HTTP: PUT /notes/{id} (token required)
// 200 {id,title,body} | 404 absent or owned by someone else
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, apperror.Unauthorized("unauthorized"))
		return
	}

	id, err := noteID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	note, err := h.notes.Update(r.Context(), owner, id, req.Title, req.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// HandleDelete removes one of the caller's notes.
//
// HTTP: DELETE /notes/{id} (token required)
// 204 no body | 404 absent or owned by someone else
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, apperror.Unauthorized("unauthorized"))
		return
	}

	id, err := noteID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.notes.Delete(r.Context(), owner, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteID parses the {id} path parameter. A non-numeric id cannot name any
// note, so it gets the same not-found as an absent one.
func noteID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.NotFound("not found")
	}
	return id, nil
}
