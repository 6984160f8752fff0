package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/biblionet/ui-api/internal/domain/library"
)

const usersPath = "/usuarios"

// UsersClient wraps the backend's account administration endpoints.
// Note the users service lives at the backend root, not under /api/library.
type UsersClient struct {
	client *Client
}

// NewUsersClient constructs a UsersClient.
func NewUsersClient(client *Client) *UsersClient {
	return &UsersClient{client: client}
}

// List returns all accounts.
func (u *UsersClient) List(ctx context.Context, token string) ([]library.User, error) {
	var users []library.User
	err := u.client.do(ctx, request{method: http.MethodGet, path: usersPath, token: token}, &users)
	return users, err
}

// Create adds an account.
func (u *UsersClient) Create(ctx context.Context, token string, in library.CreateUserInput) (library.User, error) {
	var user library.User
	err := u.client.do(ctx, request{method: http.MethodPost, path: usersPath, token: token, body: in}, &user)
	return user, err
}

// Update modifies an account; unset fields are left unchanged.
func (u *UsersClient) Update(ctx context.Context, token string, id int, in library.UpdateUserInput) (library.User, error) {
	var user library.User
	err := u.client.do(ctx, request{method: http.MethodPut, path: userPath(id), token: token, body: in}, &user)
	return user, err
}

// Delete removes an account.
func (u *UsersClient) Delete(ctx context.Context, token string, id int) error {
	return u.client.do(ctx, request{method: http.MethodDelete, path: userPath(id), token: token}, nil)
}

func userPath(id int) string {
	return fmt.Sprintf("%s/%d", usersPath, id)
}
