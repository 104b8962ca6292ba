// app/echoServer/middleware.go
package echoServer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/DurrrA/sigril-sub001/app/echoServer/jwtx"
	jwtutil "github.com/DurrrA/sigril-sub001/util/jwt"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

// Claims copies the subject and role out of the parsed JWT into plain
// context keys so handlers never touch jwt types directly. When the
// echo-jwt token is absent (the middleware is used standalone), the raw
// Authorization header is parsed instead.
func Claims(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, uidErr := jwtx.UserIDFromContext(c)
			role, roleErr := jwtx.RoleFromContext(c)
			if uidErr != nil || roleErr != nil {
				claims, err := jwtutil.ParseAuth(c.Request().Header.Get(echo.HeaderAuthorization), secret)
				if err != nil {
					return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
				}
				sub, ok := claims["sub"].(float64)
				if !ok || sub <= 0 {
					return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
				}
				uid = int64(sub)
				role, _ = claims["role"].(string)
				if role == "" {
					return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
				}
			}
			c.Set("uid", uid)
			c.Set("role", role)
			return next(c)
		}
	}
}

// RequireRole rejects requests whose JWT role claim is not in the allowed
// set. Always answers JSON, never a redirect.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
			}
			return next(c)
		}
	}
}
