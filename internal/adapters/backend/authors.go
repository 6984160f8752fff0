package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/biblionet/ui-api/internal/domain/library"
)

const authorsPath = "/api/library/authors"

// AuthorsClient wraps the backend's author endpoints.
type AuthorsClient struct {
	client *Client
}

// NewAuthorsClient constructs an AuthorsClient.
func NewAuthorsClient(client *Client) *AuthorsClient {
	return &AuthorsClient{client: client}
}

// List returns all authors, optionally filtered by name.
func (a *AuthorsClient) List(ctx context.Context, token, name string) ([]library.Author, error) {
	q := url.Values{}
	if name != "" {
		q.Set("nombre", name)
	}

	var authors []library.Author
	err := a.client.do(ctx, request{method: http.MethodGet, path: authorsPath, query: q, token: token}, &authors)
	return authors, err
}

// Get returns a single author by ID.
func (a *AuthorsClient) Get(ctx context.Context, token string, id int) (library.Author, error) {
	var author library.Author
	err := a.client.do(ctx, request{method: http.MethodGet, path: authorPath(id), token: token}, &author)
	return author, err
}

// Create adds an author.
func (a *AuthorsClient) Create(ctx context.Context, token string, in library.AuthorInput) (library.Author, error) {
	var author library.Author
	err := a.client.do(ctx, request{method: http.MethodPost, path: authorsPath, token: token, body: in}, &author)
	return author, err
}

// Update modifies an author.
func (a *AuthorsClient) Update(ctx context.Context, token string, id int, in library.AuthorInput) (library.Author, error) {
	var author library.Author
	err := a.client.do(ctx, request{method: http.MethodPut, path: authorPath(id), token: token, body: in}, &author)
	return author, err
}

// Delete removes an author.
func (a *AuthorsClient) Delete(ctx context.Context, token string, id int) error {
	return a.client.do(ctx, request{method: http.MethodDelete, path: authorPath(id), token: token}, nil)
}

func authorPath(id int) string {
	return fmt.Sprintf("%s/%d", authorsPath, id)
}
