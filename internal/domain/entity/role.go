// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have on the platform.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleTeacher indicates a teacher role.
	RoleTeacher Role = "teacher"
	// RoleStudent indicates a student role. This is the default.
	RoleStudent Role = "student"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RoleFromString converts a string to a Role, falling back to RoleStudent
// for unknown or empty values.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleStudent
	}

	return role
}
