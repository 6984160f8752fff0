package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
	"github.com/biblionet/ui-api/internal/domain/nav"
)

// SessionService defines the session operations the auth handlers need.
type SessionService interface {
	SessionHydrator
	Login(ctx context.Context, sid string, creds domainauth.Credentials) (domainauth.Session, error)
	Logout(ctx context.Context, sid string) error
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Sessions     SessionService
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles the login endpoint.
// POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sid := ensureBrowserSession(w, r, h.CookieDomain)
	session, err := h.Sessions.Login(r.Context(), sid, domainauth.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger().WarnContext(r.Context(), "login refused", "sid", sid, "error", err)
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"user":       session.Profile,
		"redirectTo": homePath(session),
	})
}

// Logout handles the logout endpoint. It is idempotent: logging out without
// a session cookie, or twice in a row, succeeds.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sid := browserSessionID(r); sid != "" {
		if err := h.Sessions.Logout(r.Context(), sid); err != nil {
			h.logger().ErrorContext(r.Context(), "logout failed", "sid", sid, "error", err)
			WriteAppError(w, err)
			return
		}
		clearBrowserSession(w, r, h.CookieDomain)
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"redirectTo": nav.Lookup(nav.RouteLogin).Path,
	})
}

// Status returns the current authentication status.
// GET /api/auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if !session.IsAuthenticated() {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          session.Profile,
	})
}

// homePath returns the path of the session's role home screen, falling back
// to the root screen for sessions whose role maps to no home.
func homePath(session domainauth.Session) string {
	if name, ok := nav.HomeFor(session.Role()); ok {
		return nav.Lookup(name).Path
	}
	return nav.Lookup(nav.RouteRoot).Path
}
