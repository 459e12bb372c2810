package user

import (
	"resourceshare/internal/pkg/errs"
)

// Role determines which lifecycle operations a user may invoke.
// Donors publish, confirm pickups, toggle auto-confirm, and cancel; receivers
// claim and confirm deliveries; admins exist for operational tooling and hold
// no special power inside the lifecycle itself.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleDonor can publish resources and drive donor-side transitions.
	RoleDonor

	// RoleReceiver can claim resources and confirm deliveries.
	RoleReceiver

	// RoleAdmin is an operational role outside the lifecycle transitions.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleDonor:    "Donor",
		RoleReceiver: "Receiver",
		RoleAdmin:    "Admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleDonor:    "Donor",
		RoleReceiver: "Receiver",
		RoleAdmin:    "Admin",
	}
}

// RoleFromString parses a role from its string representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the human-readable name of the role.
// Returns "Unknown" for invalid role values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
