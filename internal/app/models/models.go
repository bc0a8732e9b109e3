// Package models contains the database-backed entity definitions for the
// placement portal: students, admins, companies, events, participation rows
// and contact messages.
package models

// Role identifies which store a login targets and which projection of the
// user row is returned to the client.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
)

// IsValid reports whether the role is one of the known login roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleCompany:
		return true
	}
	return false
}
