package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/konoJobChange/tyoto-todo-backend/internal/services"
)

const uidContextKey = "verifiedUID"

// RequireAuth rejects any request without a valid bearer credential. Missing
// header, missing token segment and verifier rejection all collapse into a
// bare 403. The verified uid must match the :uid path parameter where one
// exists, so a valid token cannot address another user's collection.
func RequireAuth(verifier services.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parts := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
			if len(parts) < 2 {
				return c.NoContent(http.StatusForbidden)
			}

			uid, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return c.NoContent(http.StatusForbidden)
			}
			if pathUID := c.Param("uid"); pathUID != "" && pathUID != uid {
				return c.NoContent(http.StatusForbidden)
			}

			c.Set(uidContextKey, uid)
			return next(c)
		}
	}
}
