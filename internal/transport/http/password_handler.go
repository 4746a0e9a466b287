package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/langhub/Language_Hub_BackEnd/internal/service"
	"github.com/langhub/Language_Hub_BackEnd/internal/util"
)

func RegisterPasswordRoutes(e *echo.Echo, resets *service.PasswordResetService) {
	g := e.Group("/api/password")
	g.POST("/forgot", forgotPasswordHandler(resets))
	g.POST("/verify-otp", verifyCodeHandler(resets))
	g.POST("/reset", resetPasswordHandler(resets))
}

func forgotPasswordHandler(resets *service.PasswordResetService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ForgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
		}
		if strings.TrimSpace(req.Email) == "" {
			return c.JSON(http.StatusBadRequest, util.Error("Email is required."))
		}

		if err := resets.Request(c.Request().Context(), req.Email); err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, util.Error("Email not found."))
			}
			c.Logger().Errorf("forgot password: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
		}
		return c.JSON(http.StatusOK, util.Message("OTP sent to your email."))
	}
}

func verifyCodeHandler(resets *service.PasswordResetService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req VerifyCodeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
		}

		if err := resets.Verify(c.Request().Context(), req.Email, req.Code); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidResetCode):
				return c.JSON(http.StatusBadRequest, util.Error("Invalid OTP."))
			case errors.Is(err, service.ErrResetCodeExpired):
				return c.JSON(http.StatusBadRequest, util.Error("OTP expired."))
			default:
				c.Logger().Errorf("verify otp: %v", err)
				return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
			}
		}
		return c.JSON(http.StatusOK, util.Message("OTP verified."))
	}
}

func resetPasswordHandler(resets *service.PasswordResetService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
		}

		if err := resets.Reset(c.Request().Context(), req.Email, req.Code, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, util.ErrWeakPassword):
				return c.JSON(http.StatusBadRequest, util.Error(weakPasswordMessage))
			case errors.Is(err, service.ErrInvalidResetCode):
				return c.JSON(http.StatusBadRequest, util.Error("Invalid OTP."))
			case errors.Is(err, service.ErrResetCodeExpired):
				return c.JSON(http.StatusBadRequest, util.Error("OTP expired."))
			default:
				c.Logger().Errorf("reset password: %v", err)
				return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
			}
		}
		return c.JSON(http.StatusOK, util.Message("Password reset successful."))
	}
}
