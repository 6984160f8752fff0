package backend

import (
	"context"
	"net/http"

	"github.com/biblionet/ui-api/internal/domain/library"
)

const activeLoansPath = "/api/library/loans/active"

// LoansClient wraps the backend's loan endpoints.
type LoansClient struct {
	client *Client
}

// NewLoansClient constructs a LoansClient.
func NewLoansClient(client *Client) *LoansClient {
	return &LoansClient{client: client}
}

// Active returns the currently open loans.
func (l *LoansClient) Active(ctx context.Context, token string) ([]library.ActiveLoan, error) {
	var loans []library.ActiveLoan
	err := l.client.do(ctx, request{method: http.MethodGet, path: activeLoansPath, token: token}, &loans)
	return loans, err
}
