package backend

import (
	"context"
	"net/http"

	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
	apperrors "github.com/biblionet/ui-api/internal/errors"
	"github.com/biblionet/ui-api/internal/ports"
)

const loginPath = "/api/auth/login"

// AuthGateway authenticates credentials against the backend's login endpoint.
type AuthGateway struct {
	client *Client
}

var _ ports.AuthGateway = (*AuthGateway)(nil)

// NewAuthGateway constructs an AuthGateway on top of a backend client.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login posts the credentials and returns the issued grant. Any non-success
// backend response surfaces as an AppError; the caller's session state is the
// caller's concern and is never touched here.
func (g *AuthGateway) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Grant, error) {
	var grant domainauth.Grant
	err := g.client.do(ctx, request{
		method: http.MethodPost,
		path:   loginPath,
		body:   creds,
	}, &grant)
	if err != nil {
		return domainauth.Grant{}, err
	}

	// A grant without a token is a malformed backend response, not a rejection.
	if grant.Token == "" {
		return domainauth.Grant{}, apperrors.Backend("login response is missing a token")
	}
	return grant, nil
}
