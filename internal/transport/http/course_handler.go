package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/langhub/Language_Hub_BackEnd/internal/service"
	"github.com/langhub/Language_Hub_BackEnd/internal/util"
)

func RegisterCourseRoutes(e *echo.Echo, auth *service.AuthService, courses *service.CourseService) {
	g := e.Group("/api/course", RequireAuth(auth))
	g.POST("/save", saveProgressHandler(courses))
}

func saveProgressHandler(courses *service.CourseService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized."))
		}

		var req SaveProgressRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
		}

		completed, err := courses.SaveProgress(c.Request().Context(), user.ID, req.Course, req.Part)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCourse) {
				return c.JSON(http.StatusBadRequest, util.Error("Course is required."))
			}
			c.Logger().Errorf("save progress: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Server error"))
		}
		return c.JSON(http.StatusOK, SaveProgressResponse{Success: true, Completed: completed})
	}
}
