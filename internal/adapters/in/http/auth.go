package http

import (
	"net/http"
	"strings"

	"resourceshare/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// identityContextKey is where the auth middleware stores the resolved caller
// identity on the echo context.
const identityContextKey = "caller-identity"

// AuthMiddleware extracts the bearer token from the Authorization header,
// resolves it through the identity provider, and stores the caller identity
// on the request context. Requests without a resolvable identity are rejected
// with 401 before reaching a handler.
func AuthMiddleware(provider ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			identity, err := provider.Resolve(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// callerIdentity returns the identity stored by AuthMiddleware.
func callerIdentity(c echo.Context) (ports.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(ports.Identity)
	return identity, ok
}
