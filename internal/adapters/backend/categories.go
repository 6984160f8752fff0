package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/biblionet/ui-api/internal/domain/library"
)

const categoriesPath = "/api/library/categories"

// CategoriesClient wraps the backend's category endpoints.
type CategoriesClient struct {
	client *Client
}

// NewCategoriesClient constructs a CategoriesClient.
func NewCategoriesClient(client *Client) *CategoriesClient {
	return &CategoriesClient{client: client}
}

// List returns all categories, optionally filtered by name.
func (c *CategoriesClient) List(ctx context.Context, token, name string) ([]library.Category, error) {
	q := url.Values{}
	if name != "" {
		q.Set("nombre", name)
	}

	var categories []library.Category
	err := c.client.do(ctx, request{method: http.MethodGet, path: categoriesPath, query: q, token: token}, &categories)
	return categories, err
}

// Get returns a single category by ID.
func (c *CategoriesClient) Get(ctx context.Context, token string, id int) (library.Category, error) {
	var category library.Category
	err := c.client.do(ctx, request{method: http.MethodGet, path: categoryPath(id), token: token}, &category)
	return category, err
}

// Create adds a category.
func (c *CategoriesClient) Create(ctx context.Context, token string, in library.CategoryInput) (library.Category, error) {
	var category library.Category
	err := c.client.do(ctx, request{method: http.MethodPost, path: categoriesPath, token: token, body: in}, &category)
	return category, err
}

// Update modifies a category.
func (c *CategoriesClient) Update(ctx context.Context, token string, id int, in library.CategoryInput) (library.Category, error) {
	var category library.Category
	err := c.client.do(ctx, request{method: http.MethodPut, path: categoryPath(id), token: token, body: in}, &category)
	return category, err
}

// Delete removes a category.
func (c *CategoriesClient) Delete(ctx context.Context, token string, id int) error {
	return c.client.do(ctx, request{method: http.MethodDelete, path: categoryPath(id), token: token}, nil)
}

func categoryPath(id int) string {
	return fmt.Sprintf("%s/%d", categoriesPath, id)
}
