package nav

// Package nav owns the navigable route table and the route admission decision.
// It is pure: no HTTP, no storage, no side effects.

import (
	"strings"

	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
)

// RouteName identifies a navigable screen of the front end.
type RouteName string

const (
	RouteRoot            RouteName = "root"
	RouteLogin           RouteName = "login"
	RouteAdminHome       RouteName = "admin-home"
	RouteAdminStaff      RouteName = "admin-staff"
	RouteAdminCategories RouteName = "admin-categories"
	RouteAdminAuthors    RouteName = "admin-authors"
	RouteAdminBooks      RouteName = "admin-books"
	RouteReaderCatalog   RouteName = "reader-catalog"
	RouteReaderHistory   RouteName = "reader-history"
	RouteUnauthorized    RouteName = "unauthorized"
	RouteNotFound        RouteName = "not-found"
)

// Requirement is the static access metadata attached to a route.
// An empty AllowedRoles with RequiresAuth means any authenticated role.
// GuestOnly marks screens authenticated users must be redirected away from.
type Requirement struct {
	RequiresAuth bool
	AllowedRoles []domainauth.Role
	GuestOnly    bool
}

// Route pairs a screen name with its path and access requirement.
type Route struct {
	Name        RouteName
	Path        string
	Requirement Requirement
}

var staffRoles = []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleLibrarian}

var readerRoles = []domainauth.Role{domainauth.RoleReader}

// routes is the static route table, mirroring the front end's router.
//
//nolint:gochecknoglobals // static read-only table; the nav package owns it
var routes = []Route{
	{Name: RouteRoot, Path: "/", Requirement: Requirement{GuestOnly: true}},
	{Name: RouteLogin, Path: "/login", Requirement: Requirement{GuestOnly: true}},
	{Name: RouteAdminHome, Path: "/admin", Requirement: Requirement{RequiresAuth: true, AllowedRoles: staffRoles}},
	{Name: RouteAdminStaff, Path: "/admin/staff", Requirement: Requirement{RequiresAuth: true, AllowedRoles: staffRoles}},
	{Name: RouteAdminCategories, Path: "/admin/categorias", Requirement: Requirement{RequiresAuth: true, AllowedRoles: staffRoles}},
	{Name: RouteAdminAuthors, Path: "/admin/autores", Requirement: Requirement{RequiresAuth: true, AllowedRoles: staffRoles}},
	{Name: RouteAdminBooks, Path: "/admin/libros", Requirement: Requirement{RequiresAuth: true, AllowedRoles: staffRoles}},
	{Name: RouteReaderCatalog, Path: "/lector/catalogo", Requirement: Requirement{RequiresAuth: true, AllowedRoles: readerRoles}},
	{Name: RouteReaderHistory, Path: "/lector/historial", Requirement: Requirement{RequiresAuth: true, AllowedRoles: readerRoles}},
	{Name: RouteUnauthorized, Path: "/unauthorized"},
	{Name: RouteNotFound, Path: ""},
}

// Routes returns a copy of the route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup returns the route for a screen name.
// Unknown names resolve to the not-found route.
func Lookup(name RouteName) Route {
	for _, r := range routes {
		if r.Name == name {
			return r
		}
	}
	return Route{Name: RouteNotFound}
}

// Match resolves a request path to a route. Paths under /admin or /lector that
// do not match a child screen inherit the area's admission requirement, so a
// deep link cannot bypass the guard. Everything else is not-found.
func Match(path string) Route {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}
	for _, r := range routes {
		if r.Path != "" && r.Path == path {
			return r
		}
	}
	switch {
	case strings.HasPrefix(path, "/admin/"):
		return Route{Name: RouteNotFound, Path: path, Requirement: Requirement{RequiresAuth: true, AllowedRoles: staffRoles}}
	case strings.HasPrefix(path, "/lector"):
		// /lector itself redirects to the catalog screen
		return Lookup(RouteReaderCatalog)
	}
	return Route{Name: RouteNotFound, Path: path}
}

// HomeFor returns the role-appropriate home screen. The second result is
// false when the role resolves to no known home (unknown or empty role).
func HomeFor(role domainauth.Role) (RouteName, bool) {
	switch role {
	case domainauth.RoleAdmin, domainauth.RoleLibrarian:
		return RouteAdminHome, true
	case domainauth.RoleReader:
		return RouteReaderCatalog, true
	default:
		return RouteUnauthorized, false
	}
}
