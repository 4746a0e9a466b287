package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type CourseProgressRepository struct {
	db *sqlx.DB
}

func NewCourseProgressRepo(db *sqlx.DB) *CourseProgressRepository {
	return &CourseProgressRepository{db: db}
}

func (r *CourseProgressRepository) AddPart(ctx context.Context, userID uuid.UUID, course string, part int) ([]int64, error) {
	const query = `
        INSERT INTO course_progress (user_id, course, completed_parts)
        VALUES ($1, $2, ARRAY[$3::INTEGER])
        ON CONFLICT (user_id, course) DO UPDATE
        SET completed_parts = CASE
            WHEN $3 = ANY (course_progress.completed_parts) THEN course_progress.completed_parts
            ELSE array_append(course_progress.completed_parts, $3)
        END
        RETURNING completed_parts
    `
	var completed pq.Int64Array
	if err := r.db.QueryRowxContext(ctx, query, userID, course, part).Scan(&completed); err != nil {
		return nil, err
	}
	return []int64(completed), nil
}
