package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/langhub/Language_Hub_BackEnd/internal/repository/ports"
)

var ErrInvalidCourse = errors.New("course is required")

type CourseService struct {
	progress ports.CourseProgressRepository
}

func NewCourseService(progress ports.CourseProgressRepository) *CourseService {
	return &CourseService{progress: progress}
}

// SaveProgress marks a course part completed for the user and returns the
// full set of completed parts. Re-completing a part is a no-op.
func (s *CourseService) SaveProgress(ctx context.Context, userID uuid.UUID, course string, part int) ([]int64, error) {
	course = strings.TrimSpace(course)
	if course == "" {
		return nil, ErrInvalidCourse
	}
	return s.progress.AddPart(ctx, userID, course, part)
}
