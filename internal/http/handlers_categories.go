package httpx

import (
	"net/http"

	"github.com/biblionet/ui-api/internal/adapters/backend"
	"github.com/biblionet/ui-api/internal/domain/library"
)

// CategoryHandlers proxies the category catalog endpoints to the backend.
type CategoryHandlers struct {
	Svc *backend.CategoriesClient
}

// List returns all categories, optionally filtered by name.
// GET /api/library/categories?nombre=<filter>.
func (h *CategoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.List(r.Context(), sessionToken(r), r.URL.Query().Get("nombre"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, categories)
}

// GetByID returns a single category.
// GET /api/library/categories/{id}.
func (h *CategoryHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	category, err := h.Svc.Get(r.Context(), sessionToken(r), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, category)
}

// Create adds a category.
// POST /api/library/categories.
func (h *CategoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in library.CategoryInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	category, err := h.Svc.Create(r.Context(), sessionToken(r), in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, category)
}

// Update modifies a category.
// PUT /api/library/categories/{id}.
func (h *CategoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in library.CategoryInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	category, err := h.Svc.Update(r.Context(), sessionToken(r), id, in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, category)
}

// Delete removes a category.
// DELETE /api/library/categories/{id}.
func (h *CategoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
