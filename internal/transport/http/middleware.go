package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
	"github.com/langhub/Language_Hub_BackEnd/internal/service"
	"github.com/langhub/Language_Hub_BackEnd/internal/util"
)

const (
	contextUserKey  = "auth.user"
	contextTokenKey = "auth.token"
)

// RequireAuth verifies the bearer access token and resolves the live account
// before any protected handler runs. A principal whose account no longer
// exists is rejected even if the token is still within its window.
func RequireAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("No token provided."))
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, util.Error("Invalid authorization header."))
			}
			token := strings.TrimSpace(parts[1])

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrUserNotFound) {
					return c.JSON(http.StatusNotFound, util.Error("User not found."))
				}
				return c.JSON(http.StatusUnauthorized, util.Error("Invalid token."))
			}

			c.Set(contextUserKey, user)
			c.Set(contextTokenKey, token)
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(contextUserKey).(*domain.User)
	return user, ok
}
