// Package auth provides the actor identity model for the kitchen ordering
// system. Every application operation receives an explicit Actor instead of
// reading ambient request state; the session adapter resolves tokens into
// Actors at the HTTP boundary.
package auth

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Role identifies what an actor is allowed to do. Roles are mutually
// exclusive: a user is exactly one of client, cook, manager, or admin.
//
// The string forms are the wire and storage representation and must not
// change.
type Role int

const (
	// RoleUnknown is the zero value and is always invalid.
	RoleUnknown Role = iota

	// RoleClient is a customer assembling and submitting orders.
	RoleClient

	// RoleCook is a preparer fulfilling catalog items assigned to them.
	RoleCook

	// RoleManager finalizes formed orders and maintains the catalog.
	RoleManager

	// RoleAdmin has every manager permission plus staff administration.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleClient:  "CLIENT",
		RoleCook:    "COOK",
		RoleManager: "MANAGER",
		RoleAdmin:   "ADMIN",
	}
}

// String returns the canonical role name, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate returns an error for RoleUnknown and any other value outside the
// defined set.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsStaff reports whether the role carries manager-level authority.
func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleAdmin
}

// RoleFromString parses a canonical role name into a Role.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
