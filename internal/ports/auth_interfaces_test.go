package ports_test

import (
	"testing"

	mocks "github.com/biblionet/ui-api/internal/mocks/auth"
	"github.com/biblionet/ui-api/internal/ports"
)

// This test only verifies that our mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.AuthGateway = (*mocks.MockAuthGateway)(nil)
	var _ ports.CredentialStore = (*mocks.MemoryCredentialStore)(nil)
}
