package httpx

import (
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/biblionet/ui-api/internal/adapters/backend"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions   SessionService
	Books      *backend.BooksClient
	Authors    *backend.AuthorsClient
	Categories *backend.CategoriesClient
	Loans      *backend.LoansClient
	Reports    *backend.ReportsClient
	Users      *backend.UsersClient

	// Redis is optional; when set the readiness endpoint pings it.
	Redis        redis.UniversalClient
	CookieDomain string
	Logger       *slog.Logger
}

func (s RouterServices) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// NewRouter creates and configures the HTTP router. Every route runs behind
// session hydration; the per-route guards then admit or refuse.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Sessions:     services.Sessions,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	registerAuthRoutes(mux, authHandlers)
	registerNavRoutes(mux, &AdmissionHandlers{})
	registerLibraryRoutes(mux, services)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /readyz", readyHandler(services.Redis))

	logger := services.logger()
	handler := WithSession(services.Sessions, logger)(mux)
	handler = Logging(logger)(handler)
	return Recover(logger)(handler)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/status", h.Status)
}

func registerNavRoutes(mux *http.ServeMux, h *AdmissionHandlers) {
	mux.HandleFunc("POST /api/nav/admission", h.Decide)
	mux.HandleFunc("GET /api/nav/routes", h.Routes)
}

func registerLibraryRoutes(mux *http.ServeMux, services RouterServices) {
	if services.Books != nil {
		registerBookRoutes(mux, &BookHandlers{Svc: services.Books})
	}
	if services.Authors != nil {
		registerCRUD(mux, crudRoutes{
			Base:       "/api/library/authors",
			Handlers:   &AuthorHandlers{Svc: services.Authors},
			Middleware: RequireStaff,
		})
	}
	if services.Categories != nil {
		registerCRUD(mux, crudRoutes{
			Base:       "/api/library/categories",
			Handlers:   &CategoryHandlers{Svc: services.Categories},
			Middleware: RequireStaff,
		})
	}
	if services.Loans != nil && services.Reports != nil {
		registerReportRoutes(mux, &ReportHandlers{Loans: services.Loans, Reports: services.Reports})
	}
	if services.Users != nil {
		registerUserRoutes(mux, &UserHandlers{Svc: services.Users})
	}
}

func registerBookRoutes(mux *http.ServeMux, h *BookHandlers) {
	// Reads are open to any authenticated session so readers can browse the
	// catalog; writes stay staff-only.
	mux.Handle("GET /api/library/books", RequireAuth(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/library/books/{id}", RequireAuth(http.HandlerFunc(h.GetByID)))
	mux.Handle("POST /api/library/books", RequireStaff(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/library/books/{id}", RequireStaff(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/library/books/{id}", RequireStaff(http.HandlerFunc(h.Delete)))
}

func registerReportRoutes(mux *http.ServeMux, h *ReportHandlers) {
	mux.Handle("GET /api/library/loans/active", RequireStaff(http.HandlerFunc(h.ActiveLoans)))
	mux.Handle("GET /api/library/reports/top-readers", RequireStaff(http.HandlerFunc(h.TopReaders)))
	mux.Handle("GET /api/library/reports/categories", RequireStaff(http.HandlerFunc(h.CategoryStats)))
	mux.Handle("GET /api/library/reports/top-authors", RequireStaff(http.HandlerFunc(h.TopAuthors)))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers) {
	mux.Handle("GET /api/users", RequireStaff(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/users", RequireStaff(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/users/{id}", RequireStaff(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/users/{id}", RequireStaff(http.HandlerFunc(h.Delete)))
}

// crudHandlers is the handler set registerCRUD wires for a resource.
type crudHandlers interface {
	Create(http.ResponseWriter, *http.Request)
	List(http.ResponseWriter, *http.Request)
	GetByID(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// crudRoutes registers standard CRUD routes for a resource base path,
// applying Middleware if non-nil.
type crudRoutes struct {
	Base       string
	Handlers   crudHandlers
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" || cfg.Handlers == nil {
		panic("registerCRUD: incomplete route config for " + cfg.Base)
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Handlers.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.Handlers.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.Handlers.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Handlers.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Handlers.Delete))
}
