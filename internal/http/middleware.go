package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
	"github.com/biblionet/ui-api/internal/domain/nav"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionHydrator rebuilds a session from stored credentials.
type SessionHydrator interface {
	Hydrate(ctx context.Context, sid string) (domainauth.Session, error)
}

// WithSession returns a middleware that resolves the browser session cookie
// and hydrates the session into the request context. Requests without a
// cookie, and hydration failures, continue as unauthenticated so a store
// outage degrades to guest access instead of failing every route.
func WithSession(sessions SessionHydrator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sid := browserSessionID(r)
			if sid != "" {
				ctx = SetBrowserSessionInContext(ctx, sid)
				session, err := sessions.Hydrate(ctx, sid)
				if err != nil {
					logger.ErrorContext(ctx, "session hydration failed", "sid", sid, "error", err)
				} else {
					ctx = SetSessionInContext(ctx, session)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Guard returns a middleware that admits or refuses the request according to
// the given route requirement and the hydrated session. API requests get
// JSON errors; browser requests get the redirect the admission rules chose.
func Guard(req nav.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())
			verdict := nav.Decide(session, req)
			if verdict.Allowed {
				next.ServeHTTP(w, r)
				return
			}
			refuse(w, r, req, verdict)
		})
	}
}

// RequireStaff guards a handler with the staff route requirement.
func RequireStaff(next http.Handler) http.Handler {
	return Guard(nav.Lookup(nav.RouteAdminHome).Requirement)(next)
}

// RequireReader guards a handler with the reader route requirement.
func RequireReader(next http.Handler) http.Handler {
	return Guard(nav.Lookup(nav.RouteReaderCatalog).Requirement)(next)
}

// RequireAuth guards a handler so only authenticated sessions pass,
// regardless of role.
func RequireAuth(next http.Handler) http.Handler {
	return Guard(nav.Requirement{RequiresAuth: true})(next)
}

// refuse writes the refusal for a not-allowed verdict.
func refuse(w http.ResponseWriter, r *http.Request, req nav.Requirement, verdict nav.Verdict) {
	if IsBrowserRequest(r) {
		target := nav.Lookup(verdict.RedirectTo).Path
		if target == "" {
			target = "/"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	switch {
	case verdict.RedirectTo == nav.RouteLogin:
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
	case req.GuestOnly:
		// Guest-only screens refused to an authenticated user. Point the
		// caller at their home screen instead of failing.
		WriteJSON(w, http.StatusConflict, map[string]string{
			"error":      "already_authenticated",
			"redirectTo": nav.Lookup(verdict.RedirectTo).Path,
		})
	default:
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Err:     errors.New("insufficient permissions"),
		})
	}
}

// IsBrowserRequest reports whether a request expects an HTML navigation
// response rather than JSON. API routes and XHR/fetch calls are not browser
// requests.
func IsBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	if strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest") {
		return false
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}
