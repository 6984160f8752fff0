package httpx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biblionet/ui-api/internal/adapters/backend"
	authmocks "github.com/biblionet/ui-api/internal/mocks/auth"
	"github.com/biblionet/ui-api/internal/ports"
	"github.com/biblionet/ui-api/internal/service"
)

// testEnv bundles a router with the doubles behind it.
type testEnv struct {
	router   http.Handler
	sessions *service.SessionManager
	gateway  *authmocks.MockAuthGateway
	store    *authmocks.MemoryCredentialStore
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestEnv(t *testing.T, configure func(*RouterServices)) *testEnv {
	t.Helper()
	gateway := authmocks.NewMockAuthGateway()
	store := authmocks.NewMemoryCredentialStore()
	logger := discardLogger()
	sessions := service.NewSessionManager(service.SessionManagerOptions{
		Gateway: gateway,
		Store:   store,
		Logger:  logger,
	})

	services := RouterServices{Sessions: sessions, Logger: logger}
	if configure != nil {
		configure(&services)
	}
	return &testEnv{
		router:   NewRouter(services),
		sessions: sessions,
		gateway:  gateway,
		store:    store,
	}
}

// doJSON performs a JSON request against the router, attaching cookies.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login performs a login and returns the browser session cookie.
func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "secret",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == BrowserSessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("login response did not set a browser session cookie")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// newBackendClients builds backend clients against a stub backend server.
func newBackendClients(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	client, err := backend.NewClient(backend.Config{BaseURL: ts.URL})
	require.NoError(t, err)
	return client
}

var _ ports.CredentialStore = (*authmocks.MemoryCredentialStore)(nil)
