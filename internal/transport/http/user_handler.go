package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/langhub/Language_Hub_BackEnd/internal/media"
	"github.com/langhub/Language_Hub_BackEnd/internal/service"
	"github.com/langhub/Language_Hub_BackEnd/internal/util"
)

func RegisterUserRoutes(e *echo.Echo, auth *service.AuthService, users *service.UserService) {
	g := e.Group("/api/v1/user", RequireAuth(auth))
	g.GET("/me", meHandler())
	g.PUT("/update", updateUserHandler(users))
	g.GET("/all", listUsersHandler(users))
	g.DELETE("/delete/:id", deleteUserHandler(users))
	g.POST("/me/avatar", uploadAvatarHandler(users))
}

func meHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized."))
		}
		return c.JSON(http.StatusOK, echo.Map{"user": toAuthUser(user)})
	}
}

func updateUserHandler(users *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized."))
		}

		var req UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
		}

		updated, err := users.Update(c.Request().Context(), user.ID, req.FullName, req.Email, req.ProfileImage)
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				return c.JSON(http.StatusConflict, util.Error("Email already registered."))
			}
			c.Logger().Errorf("update user: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
		}
		return c.JSON(http.StatusOK, echo.Map{"user": toAuthUser(updated)})
	}
}

func listUsersHandler(users *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := users.List(c.Request().Context())
		if err != nil {
			c.Logger().Errorf("list users: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
		}
		return c.JSON(http.StatusOK, echo.Map{"users": toAuthUsers(list)})
	}
}

func deleteUserHandler(users *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, util.Error("User not found."))
		}

		var req DeleteUserRequest
		_ = c.Bind(&req) // reason is optional

		if err := users.Delete(c.Request().Context(), id, req.Reason); err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, util.Error("User not found."))
			}
			c.Logger().Errorf("delete user: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
		}
		return c.JSON(http.StatusOK, util.Message("User deleted."))
	}
}

func uploadAvatarHandler(users *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized."))
		}

		fileHeader, err := c.FormFile("avatar")
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Avatar file is required."))
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.Logger().Errorf("open avatar upload: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
		}
		defer file.Close()

		updated, err := users.UploadAvatar(c.Request().Context(), user, media.Upload{
			Reader:      file,
			Size:        fileHeader.Size,
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		})
		if err != nil {
			switch {
			case errors.Is(err, media.ErrUnsupportedImage):
				return c.JSON(http.StatusBadRequest, util.Error("Unsupported image format."))
			case errors.Is(err, media.ErrImageTooLarge):
				return c.JSON(http.StatusBadRequest, util.Error("Image too large."))
			default:
				c.Logger().Errorf("upload avatar: %v", err)
				return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"user": toAuthUser(updated)})
	}
}
