package ports

import (
	"context"

	"github.com/google/uuid"
)

type CourseProgressRepository interface {
	// AddPart records a completed part for (user, course) if not already
	// present and returns the full set of completed parts.
	AddPart(ctx context.Context, userID uuid.UUID, course string, part int) ([]int64, error)
}
