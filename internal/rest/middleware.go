package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/publica-dev/publica/internal/db"
	"github.com/publica-dev/publica/internal/publica"
)

const userContextKey = "publica.user"

// authenticate resolves the Bearer token into a user and stores it in
// the request context. Requests without a valid token get 401.
func (h *Handler) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
		}

		user, err := h.uc.UserFromToken(c.Request().Context(), token)
		if err != nil {
			h.log.Warn("token rejected", "path", c.Path(), "error", err)
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
		}

		c.Set(userContextKey, *user)
		return next(c)
	}
}

// requireRole gates a route to the given roles. It must run after
// authenticate.
func (h *Handler) requireRole(roles ...publica.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := currentUser(c)
			for _, role := range roles {
				if publica.Role(user.Role) == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
		}
	}
}

func currentUser(c echo.Context) db.User {
	user, _ := c.Get(userContextKey).(db.User)
	return user
}
