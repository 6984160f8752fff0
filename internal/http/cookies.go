package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BrowserSessionCookie names the cookie that identifies a browser session.
// Credentials in the store are keyed by its value, never stored in it.
const BrowserSessionCookie = "bsid"

// browserSessionID returns the browser session ID from the request cookie,
// or "" when absent.
func browserSessionID(r *http.Request) string {
	c, err := r.Cookie(BrowserSessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// ensureBrowserSession returns the request's browser session ID, minting and
// setting a fresh one when the request carried none.
func ensureBrowserSession(w http.ResponseWriter, r *http.Request, domain string) string {
	if sid := browserSessionID(r); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     BrowserSessionCookie,
		Value:    sid,
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// clearBrowserSession expires the browser session cookie. It mirrors the
// attributes used when setting the cookie to maximize compatibility across
// browsers during deletion.
func clearBrowserSession(w http.ResponseWriter, r *http.Request, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     BrowserSessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
