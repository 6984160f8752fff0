package auth

// Package auth contains domain-level types for the authenticated session.
// It is pure and free of framework/adapter concerns.

// Role represents an application's authorization role.
// The string form matches the role values the library backend returns;
// comparison is case-sensitive exact match against the closed set below.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleLibrarian Role = "Librarian"
	RoleReader    Role = "Reader"
)

// ParseRole maps a raw role value onto the closed Role set.
// Unknown values report ok=false and must be treated as "no role" by callers,
// never as an error condition.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleLibrarian, RoleReader:
		return Role(s), true
	default:
		return "", false
	}
}

// Profile is the user record issued by the authentication gateway and
// mirrored into the credential store for the session's lifetime.
type Profile struct {
	ID          int    `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
}

// Credentials are the email/password pair submitted at login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Grant is the token and profile pair the authentication gateway issues on a
// successful login. The JSON shape matches the backend's login response.
type Grant struct {
	Token   string  `json:"token"`
	Profile Profile `json:"user"`
}

// Session is the in-memory record of the authenticated identity.
// Token and Profile are set and cleared together: an authenticated session
// always has both, an unauthenticated session has neither.
type Session struct {
	Token   string
	Profile *Profile
}

// IsAuthenticated reports whether the session carries a credential.
func (s Session) IsAuthenticated() bool { return s.Token != "" && s.Profile != nil }

// Role returns the session's role, or the empty Role when the session is
// unauthenticated or the stored role value falls outside the known set.
func (s Session) Role() Role {
	if !s.IsAuthenticated() {
		return ""
	}
	if _, ok := ParseRole(string(s.Profile.Role)); !ok {
		return ""
	}
	return s.Profile.Role
}

// IsStaff reports whether the session belongs to library staff.
func (s Session) IsStaff() bool {
	r := s.Role()
	return r == RoleAdmin || r == RoleLibrarian
}

// IsReader reports whether the session belongs to a reader.
func (s Session) IsReader() bool { return s.Role() == RoleReader }
