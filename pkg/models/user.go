package models

import "github.com/shelfwise/shelfwise/pkg/enums"

// User is the account record as stored by the remote collection. The store
// keeps passwords in plain text; credential checks are exact-match queries
// against it.
type User struct {
	ID           string     `json:"id,omitempty"`
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Location     string     `json:"location"`
	MobileNumber string     `json:"mobileNumber"`
	Role         enums.Role `json:"role"`
	AdminPin     string     `json:"adminPin,omitempty"`
	ActiveTime   int        `json:"activeTime"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == enums.RoleAdmin
}
