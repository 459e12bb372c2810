package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdentityProvider struct {
	identity ports.Identity
	err      error
}

func (p stubIdentityProvider) Resolve(_ context.Context, _ string) (ports.Identity, error) {
	return p.identity, p.err
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := AuthMiddleware(stubIdentityProvider{})
	err := mw(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_UnresolvableToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := AuthMiddleware(stubIdentityProvider{err: errs.NewNotAuthorizedError("authenticate")})
	err := mw(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_StoresIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	want := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleDonor}
	mw := AuthMiddleware(stubIdentityProvider{identity: want})

	var got ports.Identity
	err := mw(func(c echo.Context) error {
		identity, ok := callerIdentity(c)
		require.True(t, ok)
		got = identity
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWriteError_StatusMapping(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"object not found", errs.NewObjectNotFoundError("resource", "x"), http.StatusNotFound},
		{"not authorized", errs.NewNotAuthorizedError("cancel resource"), http.StatusForbidden},
		{"state conflict", errs.NewStateConflictError("claim", "Claimed"), http.StatusConflict},
		{"value invalid", errs.NewValueIsInvalidError("category"), http.StatusBadRequest},
		{"value required", errs.NewValueIsRequiredError("title"), http.StatusBadRequest},
		{"value out of range", errs.NewValueIsOutOfRangeError("latitude", 91.0, -90.0, 90.0), http.StatusBadRequest},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, writeError(c, tc.err))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestWriteError_ConflictCarriesObservedStatus(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, writeError(c, errs.NewStateConflictError("claim resource", "Claimed")))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Claimed")
}

func TestWriteError_InternalErrorIsNotEchoed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, writeError(c, errors.New("dsn=postgres://secret")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}
