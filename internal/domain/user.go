package domain

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a storefront account. Authentication is handled by the edge
// gateway; this type only carries the identity and role the engine filters on.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
