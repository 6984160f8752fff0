package httpx

import (
	"net/http"

	"github.com/biblionet/ui-api/internal/adapters/backend"
	"github.com/biblionet/ui-api/internal/domain/library"
)

// AuthorHandlers proxies the author catalog endpoints to the backend.
type AuthorHandlers struct {
	Svc *backend.AuthorsClient
}

// List returns all authors, optionally filtered by name.
// GET /api/library/authors?nombre=<filter>.
func (h *AuthorHandlers) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.Svc.List(r.Context(), sessionToken(r), r.URL.Query().Get("nombre"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, authors)
}

// GetByID returns a single author.
// GET /api/library/authors/{id}.
func (h *AuthorHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	author, err := h.Svc.Get(r.Context(), sessionToken(r), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, author)
}

// Create adds an author.
// POST /api/library/authors.
func (h *AuthorHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in library.AuthorInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	author, err := h.Svc.Create(r.Context(), sessionToken(r), in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, author)
}

// Update modifies an author.
// PUT /api/library/authors/{id}.
func (h *AuthorHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in library.AuthorInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	author, err := h.Svc.Update(r.Context(), sessionToken(r), id, in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, author)
}

// Delete removes an author.
// DELETE /api/library/authors/{id}.
func (h *AuthorHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), sessionToken(r), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
