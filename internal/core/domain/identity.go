package domain

// Role classifies the authenticated principal.
type Role string

const (
	RoleUser       Role = "USER"
	RoleTechnician Role = "TECHNICIAN"
)

// Known reports whether the role is one the client understands. The router
// refuses to build an authenticated screen tree for anything else.
func (r Role) Known() bool {
	return r == RoleUser || r == RoleTechnician
}

// Identity is the authenticated principal as returned by the backend.
// It exists only while a session is active and is owned by the session
// service; screens read it but never mutate it.
type Identity struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        Role   `json:"role"`
}

// FullName joins first and last name for display.
func (i Identity) FullName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	default:
		return i.FirstName + " " + i.LastName
	}
}
