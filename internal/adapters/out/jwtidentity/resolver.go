// Package jwtidentity resolves bearer tokens into caller identities. Tokens
// carry only the user ID; the role and active flag are read fresh from the
// user store on every resolution, so a deactivated user is locked out without
// waiting for token expiry.
package jwtidentity

import (
	"context"
	"time"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Resolver implements ports.IdentityProvider over HS256-signed JWTs.
type Resolver struct {
	secret []byte
	users  ports.UserRepository
}

// NewResolver creates a Resolver verifying tokens with the given secret and
// resolving subjects against the given user repository.
func NewResolver(secret []byte, users ports.UserRepository) *Resolver {
	return &Resolver{
		secret: secret,
		users:  users,
	}
}

// Resolve parses and verifies a bearer token and returns the caller's
// identity. Malformed or expired tokens, unknown subjects, and inactive users
// all resolve to a NotAuthorizedError; the reasons are folded into one error
// shape so callers cannot probe which accounts exist.
func (r *Resolver) Resolve(ctx context.Context, token string) (ports.Identity, error) {
	parsed, err := jwt.Parse(token, func(_ *jwt.Token) (any, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ports.Identity{}, errs.NewNotAuthorizedErrorWithCause("authenticate", err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return ports.Identity{}, errs.NewNotAuthorizedErrorWithCause("authenticate", err)
	}

	userID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return ports.Identity{}, errs.NewNotAuthorizedErrorWithCause("authenticate", err)
	}

	caller, err := r.users.Get(ctx, userID)
	if err != nil {
		return ports.Identity{}, errs.NewNotAuthorizedErrorWithCause("authenticate", err)
	}
	if !caller.IsActive() {
		return ports.Identity{}, errs.NewNotAuthorizedError("authenticate")
	}

	return ports.Identity{
		UserID: caller.ID(),
		Role:   caller.Role(),
	}, nil
}

// Issue signs a token for the given user, valid for ttl. Used by provisioning
// tooling and tests; the service itself only verifies.
func (r *Resolver) Issue(userID kernel.UUID, ttl time.Duration) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	return token.SignedString(r.secret)
}
