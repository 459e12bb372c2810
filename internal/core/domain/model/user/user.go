package user

import (
	"errors"
	"strings"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/pkg/errs"
	"resourceshare/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// User is the minimal identity shape the lifecycle core works with: a stable
// identifier, a display name for response projections, a role gating which
// transitions the user may invoke, and an active flag honored at identity
// resolution. Credential handling lives outside this system; the core treats
// users as read-only input.
type User struct {
	// id is the unique identifier for the user
	id kernel.UUID
	// name is the display name shown in resource projections
	name string
	// email is the user's contact address
	email string
	// role gates which lifecycle operations the user may invoke
	role Role
	// active marks whether the user may act at all
	active bool
	// guard ensures the user was created via a constructor
	guard guard.ConstructorGuard
}

// NewUser creates an active User with validation.
func NewUser(id kernel.UUID, name string, email string, role Role) (*User, error) {
	u := &User{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persisted state, including the active flag.
func RestoreUser(id kernel.UUID, name string, email string, role Role, active bool) (*User, error) {
	u := &User{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's contact address.
func (u *User) Email() string {
	return u.email
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the user may act.
func (u *User) IsActive() bool {
	return u.active
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
