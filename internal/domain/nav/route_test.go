package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
)

func TestLookup_KnownAndUnknown(t *testing.T) {
	r := Lookup(RouteAdminBooks)
	assert.Equal(t, "/admin/libros", r.Path)
	assert.True(t, r.Requirement.RequiresAuth)

	assert.Equal(t, RouteNotFound, Lookup(RouteName("nope")).Name)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		path string
		want RouteName
	}{
		{"/", RouteRoot},
		{"/login", RouteLogin},
		{"/admin", RouteAdminHome},
		{"/admin/", RouteAdminHome},
		{"/admin/libros", RouteAdminBooks},
		{"/lector/catalogo", RouteReaderCatalog},
		{"/lector", RouteReaderCatalog},
		{"/unauthorized", RouteUnauthorized},
		{"/banana", RouteNotFound},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(tt.path).Name, "path %s", tt.path)
	}
}

func TestMatch_UnknownAdminPathKeepsGuard(t *testing.T) {
	r := Match("/admin/secret-screen")
	assert.Equal(t, RouteNotFound, r.Name)
	assert.True(t, r.Requirement.RequiresAuth)
	assert.Contains(t, r.Requirement.AllowedRoles, domainauth.RoleAdmin)
}

func TestHomeFor(t *testing.T) {
	home, ok := HomeFor(domainauth.RoleAdmin)
	assert.True(t, ok)
	assert.Equal(t, RouteAdminHome, home)

	home, ok = HomeFor(domainauth.RoleReader)
	assert.True(t, ok)
	assert.Equal(t, RouteReaderCatalog, home)

	home, ok = HomeFor(domainauth.Role(""))
	assert.False(t, ok)
	assert.Equal(t, RouteUnauthorized, home)
}

func TestRoutes_ReturnsCopy(t *testing.T) {
	a := Routes()
	a[0].Path = "/mutated"
	assert.Equal(t, "/", Routes()[0].Path)
}
