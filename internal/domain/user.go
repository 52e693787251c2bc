package domain

// Role selects which screens a session user sees.
type Role string

const (
	RoleCreator Role = "creator"
	RoleDonor   Role = "donor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCreator, RoleDonor, RoleAdmin:
		return true
	}
	return false
}

// User is a demo session identity. No credentials are verified anywhere;
// sign-in only checks that the fields are present.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
