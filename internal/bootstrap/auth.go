package bootstrap

import (
	"fmt"
	"log/slog"

	redislib "github.com/redis/go-redis/v9"

	"github.com/biblionet/ui-api/config"
	"github.com/biblionet/ui-api/internal/adapters/backend"
	"github.com/biblionet/ui-api/internal/adapters/devauth"
	redisadapter "github.com/biblionet/ui-api/internal/adapters/redis"
	"github.com/biblionet/ui-api/internal/ports"
	"github.com/biblionet/ui-api/internal/service"
)

// BackendClients groups the resource clients built against the library
// backend and the users service.
type BackendClients struct {
	Auth       *backend.AuthGateway
	Books      *backend.BooksClient
	Authors    *backend.AuthorsClient
	Categories *backend.CategoriesClient
	Loans      *backend.LoansClient
	Reports    *backend.ReportsClient
	Users      *backend.UsersClient
}

// BuildBackendClients constructs the backend resource clients from config.
func BuildBackendClients(cfg config.BackendConfig) (*BackendClients, error) {
	library, err := backend.NewClient(backend.Config{
		BaseURL: cfg.LibraryURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build library client: %w", err)
	}

	users := library
	if cfg.UsersURL != cfg.LibraryURL {
		users, err = backend.NewClient(backend.Config{
			BaseURL: cfg.UsersURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("build users client: %w", err)
		}
	}

	return &BackendClients{
		Auth:       backend.NewAuthGateway(library),
		Books:      backend.NewBooksClient(library),
		Authors:    backend.NewAuthorsClient(library),
		Categories: backend.NewCategoriesClient(library),
		Loans:      backend.NewLoansClient(library),
		Reports:    backend.NewReportsClient(library),
		Users:      backend.NewUsersClient(users),
	}, nil
}

// BuildSessionManager wires the auth gateway and the credential store into a
// session manager. The gateway is picked by auth mode: the real backend, or
// the config-driven dev gateway.
func BuildSessionManager(
	cfg *config.AppConfig,
	clients *BackendClients,
	rdb redislib.UniversalClient,
	logger *slog.Logger,
) (*service.SessionManager, error) {
	var gateway ports.AuthGateway
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		devGateway, err := devauth.NewGateway(devauth.Config{
			UserID:      cfg.Auth.DevAuth.UserID,
			DisplayName: cfg.Auth.DevAuth.DisplayName,
			Email:       cfg.Auth.DevAuth.Email,
			Role:        cfg.Auth.DevAuth.Role,
		})
		if err != nil {
			return nil, fmt.Errorf("build dev auth gateway: %w", err)
		}
		if logger != nil {
			logger.Warn("mock authentication enabled, do not use in production",
				"email", cfg.Auth.DevAuth.Email,
				"role", cfg.Auth.DevAuth.Role,
			)
		}
		gateway = devGateway
	case config.AuthModeBackend:
		gateway = clients.Auth
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}

	store := redisadapter.NewCredentialStore(rdb).WithTTL(cfg.Auth.SessionTTL)

	return service.NewSessionManager(service.SessionManagerOptions{
		Gateway: gateway,
		Store:   store,
		Logger:  logger,
	}), nil
}
