package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/langhub/Language_Hub_BackEnd/internal/service"
	"github.com/langhub/Language_Hub_BackEnd/internal/util"
)

const weakPasswordMessage = "Password must be at least 5 characters and include uppercase, lowercase and numbers."

func RegisterAuthRoutes(e *echo.Echo, auth *service.AuthService) {
	g := e.Group("/api/v1/user")
	g.POST("/register", registerHandler(auth))
	g.POST("/login", loginHandler(auth))
	g.POST("/refresh", refreshHandler(auth))
}

func registerHandler(auth *service.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
		}
		if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, util.Error("All fields are required."))
		}

		user, pair, err := auth.Register(c.Request().Context(), req.FullName, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, util.ErrWeakPassword):
				return c.JSON(http.StatusBadRequest, util.Error(weakPasswordMessage))
			case errors.Is(err, service.ErrEmailTaken):
				return c.JSON(http.StatusConflict, util.Error("Email already registered."))
			default:
				c.Logger().Errorf("register: %v", err)
				return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
			}
		}

		return c.JSON(http.StatusCreated, AuthResponse{
			Message:      "User registered.",
			User:         toAuthUser(user),
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		})
	}
}

func loginHandler(auth *service.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, util.Error("Email and password required."))
		}

		user, pair, err := auth.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, util.Error("Invalid credentials."))
			}
			c.Logger().Errorf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
		}

		return c.JSON(http.StatusOK, AuthResponse{
			Message:      "Login successful",
			User:         toAuthUser(user),
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		})
	}
}

func refreshHandler(auth *service.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
		}
		if strings.TrimSpace(req.RefreshToken) == "" {
			return c.JSON(http.StatusBadRequest, util.Error("No token provided."))
		}

		pair, err := auth.Refresh(c.Request().Context(), req.RefreshToken)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidToken):
				return c.JSON(http.StatusUnauthorized, util.Error("Invalid token."))
			case errors.Is(err, service.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, util.Error("User not found."))
			default:
				c.Logger().Errorf("refresh: %v", err)
				return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
			}
		}

		return c.JSON(http.StatusOK, TokenResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		})
	}
}
