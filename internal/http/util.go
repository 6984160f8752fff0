package httpx

import (
	"errors"
	"net/http"
	"strconv"
)

// sessionToken returns the backend token of the hydrated session, or "" for
// guests. Guarded routes never see "" because the guard runs first.
func sessionToken(r *http.Request) string {
	return SessionFromContext(r.Context()).Token
}

// pathID parses the {id} path segment. On failure it writes a 400 response
// and returns false.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_id",
			Err:     errors.New("id must be a positive integer"),
		})
		return 0, false
	}
	return id, true
}

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
