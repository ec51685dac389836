// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the kind of caller the identity provider vouches for.
type Role string

const (
	// RoleTourist indicates a registered tourist.
	RoleTourist Role = "tourist"
	// RoleAdmin indicates an authority/administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleTourist, RoleAdmin:
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

// Actor is a verified caller: the {userId, role} claim issued by the identity provider.
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// SystemActor is used for transitions and dispatches the service performs on its own.
var SystemActor = Actor{UserID: uuid.Nil, Role: RoleAdmin}
