package domain

import "slices"

// Role is the claim-level role attached to an identity.
type Role string

const (
	// RoleOwner is a tenant account holder linked to a tenant id
	RoleOwner Role = "owner"

	// RoleDevice is a registered tablet bound to one unit
	RoleDevice Role = "device"
)

var ValidRoles = []Role{RoleOwner, RoleDevice}

func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasAnyRole reports whether role is one of required.
func HasAnyRole(role Role, required ...Role) bool {
	return slices.Contains(required, role)
}
