package domain

import "strings"

// Role is the session role; RoleUnauthenticated is the landing state.
type Role string

const (
	RoleUnauthenticated Role = "unauthenticated"
	RolePatient         Role = "patient"
	RoleDoctor          Role = "doctor"
	RoleResearcher      Role = "researcher"
)

// PortalKind identifies which portal an authenticated role sees.
type PortalKind string

const (
	PortalPatient    PortalKind = "patient"
	PortalDoctor     PortalKind = "doctor"
	PortalResearcher PortalKind = "researcher"
)

// ParseRole maps free text (case-insensitive, surrounding spaces ignored) to a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUnauthenticated:
		return RoleUnauthenticated, true
	case RolePatient:
		return RolePatient, true
	case RoleDoctor:
		return RoleDoctor, true
	case RoleResearcher:
		return RoleResearcher, true
	}
	return "", false
}

// Authenticated reports whether the role selects a portal.
func (r Role) Authenticated() bool {
	_, ok := r.PortalKind()
	return ok
}

// PortalKind returns the portal for an authenticated role.
func (r Role) PortalKind() (PortalKind, bool) {
	switch r {
	case RolePatient:
		return PortalPatient, true
	case RoleDoctor:
		return PortalDoctor, true
	case RoleResearcher:
		return PortalResearcher, true
	}
	return "", false
}

// Role is the inverse of Role.PortalKind.
func (k PortalKind) Role() Role {
	return Role(k)
}
