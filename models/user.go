package models

// Role determines which screens and notifications a user sees.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

// User represents a portal account. Email is unique across the store.
// Role is assigned at registration (always customer) and only changes
// through administrative provisioning, never through the normal flows.
type User struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Role    Role    `json:"role"`
	Contact Contact `json:"contact"`
	Avatar  string  `json:"avatar,omitempty"`
}
