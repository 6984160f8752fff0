package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/biblionet/ui-api/internal/domain/library"
)

const reportsPath = "/api/library/reports"

// DefaultTopAuthorsMin is the default minimum book count for the top-authors report.
const DefaultTopAuthorsMin = 2

// ReportsClient wraps the backend's reporting endpoints.
type ReportsClient struct {
	client *Client
}

// NewReportsClient constructs a ReportsClient.
func NewReportsClient(client *Client) *ReportsClient {
	return &ReportsClient{client: client}
}

// TopReaders returns the users with the most loans.
func (r *ReportsClient) TopReaders(ctx context.Context, token string) ([]library.TopReader, error) {
	var rows []library.TopReader
	err := r.client.do(ctx, request{method: http.MethodGet, path: reportsPath + "/top-readers", token: token}, &rows)
	return rows, err
}

// CategoryStats returns the book count per category.
func (r *ReportsClient) CategoryStats(ctx context.Context, token string) ([]library.CategoryStat, error) {
	var rows []library.CategoryStat
	err := r.client.do(ctx, request{method: http.MethodGet, path: reportsPath + "/categories", token: token}, &rows)
	return rows, err
}

// TopAuthors returns authors with at least min books. Non-positive min falls
// back to the default.
func (r *ReportsClient) TopAuthors(ctx context.Context, token string, min int) ([]library.TopAuthor, error) {
	if min <= 0 {
		min = DefaultTopAuthorsMin
	}
	q := url.Values{}
	q.Set("min", strconv.Itoa(min))

	var rows []library.TopAuthor
	err := r.client.do(ctx, request{method: http.MethodGet, path: reportsPath + "/top-authors", query: q, token: token}, &rows)
	return rows, err
}
