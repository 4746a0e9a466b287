package domain

import "time"

// ResetCode is the one-time password-reset code for an email address.
// At most one row exists per email; a new issuance replaces the old one.
type ResetCode struct {
	Email     string    `db:"email" json:"email"`
	Code      string    `db:"code" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (r *ResetCode) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
