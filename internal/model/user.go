package model

import "strings"

// Role is the clinic role the assistant answers for.
type Role string

const (
	RoleReceptionist Role = "receptionist"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleTechnician   Role = "technician"
	RoleAdmin        Role = "admin"
	RolePatient      Role = "patient"
)

// ParseRole normalises a free-form role name. Unknown names are kept as is.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// User identifies the person talking to the assistant.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Scope is the authenticated caller of a use case.
type Scope struct {
	UserID   string
	Username string
	Role     Role
}

// User returns the scope as a User.
func (sc Scope) User() User {
	return User{ID: sc.UserID, Name: sc.Username, Role: sc.Role}
}
