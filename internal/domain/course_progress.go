package domain

import "github.com/google/uuid"

type CourseProgress struct {
	UserID         uuid.UUID `db:"user_id" json:"userId"`
	Course         string    `db:"course" json:"course"`
	CompletedParts []int64   `db:"completed_parts" json:"completedParts"`
}
