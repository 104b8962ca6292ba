package echoServer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/DurrrA/sigril-sub001/model"
	jwtutil "github.com/DurrrA/sigril-sub001/util/jwt"
)

func claimsContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestClaims_ParsesAuthorizationHeader(t *testing.T) {
	tok, err := jwtutil.Issue("secret", 7, model.RoleAdmin, 1)
	require.NoError(t, err)

	c, _ := claimsContext(t, "Bearer "+tok)

	called := false
	h := Claims("secret")(func(c echo.Context) error {
		called = true
		return nil
	})
	require.NoError(t, h(c))
	require.True(t, called)
	require.Equal(t, int64(7), c.Get("uid"))
	require.Equal(t, model.RoleAdmin, c.Get("role"))
}

func TestClaims_RejectsWrongSecret(t *testing.T) {
	tok, err := jwtutil.Issue("other-secret", 7, model.RoleUser, 1)
	require.NoError(t, err)

	c, rec := claimsContext(t, "Bearer "+tok)

	called := false
	h := Claims("secret")(func(c echo.Context) error {
		called = true
		return nil
	})
	require.NoError(t, h(c))
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClaims_RejectsMissingHeader(t *testing.T) {
	c, rec := claimsContext(t, "")

	h := Claims("secret")(func(c echo.Context) error { return nil })
	require.NoError(t, h(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	c, _ := claimsContext(t, "")
	c.Set("role", model.RoleAdmin)

	called := false
	h := RequireRole(model.RoleAdmin)(func(c echo.Context) error {
		called = true
		return nil
	})
	require.NoError(t, h(c))
	require.True(t, called)

	c2, rec := claimsContext(t, "")
	c2.Set("role", model.RoleUser)
	h2 := RequireRole(model.RoleAdmin)(func(c echo.Context) error { return nil })
	require.NoError(t, h2(c2))
	require.Equal(t, http.StatusForbidden, rec.Code)
}
