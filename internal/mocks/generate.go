// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// auth port interfaces. The mocks are generated using go:generate directives and
// provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	gateway := mocks.NewMockAuthGateway(ctrl)
//	gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return(grant, nil)
package mocks

// Generate mock for AuthGateway interface from internal/ports.
// This creates MockAuthGateway with the Login method.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_gateway_mock.go github.com/biblionet/ui-api/internal/ports AuthGateway

// Generate mock for CredentialStore interface from internal/ports.
// This creates MockCredentialStore with Get, Set, SetPair and Remove.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_store_mock.go github.com/biblionet/ui-api/internal/ports CredentialStore
