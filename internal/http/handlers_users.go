package httpx

import (
	"net/http"

	"github.com/biblionet/ui-api/internal/adapters/backend"
	"github.com/biblionet/ui-api/internal/domain/library"
)

// UserHandlers proxies the account administration endpoints to the backend's
// users service.
type UserHandlers struct {
	Svc *backend.UsersClient
}

// List returns all accounts.
// GET /api/users.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context(), sessionToken(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

// Create adds an account.
// POST /api/users.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in library.CreateUserInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	user, err := h.Svc.Create(r.Context(), sessionToken(r), in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// Update modifies an account. Absent fields stay unchanged.
// PUT /api/users/{id}.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in library.UpdateUserInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	user, err := h.Svc.Update(r.Context(), sessionToken(r), id, in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Delete removes an account.
// DELETE /api/users/{id}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
