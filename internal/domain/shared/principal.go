package shared

// Principal identifies the caller of an operation. Operations that need the
// caller's identity receive it as an explicit parameter; there is no ambient
// security context.
type Principal struct {
	Name          string
	Authenticated bool
}

// Anonymous is the principal for unauthenticated or system-initiated calls.
var Anonymous = Principal{}

// HasName reports whether the principal is authenticated with a non-empty name.
func (p Principal) HasName() bool {
	return p.Authenticated && p.Name != ""
}

// NewPrincipal creates an authenticated principal with the given name.
func NewPrincipal(name string) Principal {
	return Principal{Name: name, Authenticated: true}
}
