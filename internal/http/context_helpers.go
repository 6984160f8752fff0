package httpx

import (
	"context"

	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// bsidKey carries the browser session ID resolved by the session middleware.
type bsidKey struct{}

// SetSessionInContext returns a child context that carries the given session.
func SetSessionInContext(ctx context.Context, session domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session carried by the context. A context
// never touched by the session middleware yields the unauthenticated session.
func SessionFromContext(ctx context.Context) domainauth.Session {
	if s, ok := ctx.Value(sessionKey{}).(domainauth.Session); ok {
		return s
	}
	return domainauth.Session{}
}

// SetBrowserSessionInContext returns a child context carrying the browser session ID.
func SetBrowserSessionInContext(ctx context.Context, sid string) context.Context {
	if sid == "" {
		return ctx
	}
	return context.WithValue(ctx, bsidKey{}, sid)
}

// BrowserSessionFromContext returns the browser session ID, or "" when the
// request carried no session cookie.
func BrowserSessionFromContext(ctx context.Context) string {
	if sid, ok := ctx.Value(bsidKey{}).(string); ok {
		return sid
	}
	return ""
}

// IsGuest reports whether the current request context is unauthenticated.
func IsGuest(ctx context.Context) bool {
	return !SessionFromContext(ctx).IsAuthenticated()
}
