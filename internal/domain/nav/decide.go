package nav

import (
	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
)

// Verdict is the outcome of a route admission check: either the navigation
// proceeds, or the caller must redirect to the named screen.
type Verdict struct {
	Allowed    bool
	RedirectTo RouteName
}

// Allow is the verdict that lets a navigation proceed.
//
//nolint:gochecknoglobals // immutable sentinel value
var Allow = Verdict{Allowed: true}

// Redirect builds a redirect verdict to the given screen.
func Redirect(to RouteName) Verdict { return Verdict{RedirectTo: to} }

// Decide evaluates a navigation attempt against the session and the
// destination's requirement. Rules apply in order, first match wins:
//
//  1. An authenticated session requesting a guest-only screen (login, root)
//     is sent to its role home, keeping it out of the guest flow.
//  2. A protected screen with no authenticated session redirects to login.
//     The original destination is not preserved.
//  3. A protected screen whose role set excludes the session's role sends the
//     caller to its own role home; a session with no resolvable role goes to
//     the unauthorized screen instead.
//  4. Otherwise the navigation is allowed.
//
// An unrecognized role value behaves as "no role": it fails every role check
// and never crashes the decision.
func Decide(sess domainauth.Session, req Requirement) Verdict {
	if sess.IsAuthenticated() && req.GuestOnly {
		home, _ := HomeFor(sess.Role())
		return Redirect(home)
	}

	if req.RequiresAuth && !sess.IsAuthenticated() {
		return Redirect(RouteLogin)
	}

	if req.RequiresAuth && len(req.AllowedRoles) > 0 && !roleAllowed(sess.Role(), req.AllowedRoles) {
		home, ok := HomeFor(sess.Role())
		if !ok {
			return Redirect(RouteUnauthorized)
		}
		return Redirect(home)
	}

	return Allow
}

func roleAllowed(role domainauth.Role, allowed []domainauth.Role) bool {
	if role == "" {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
