package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
)

type ResetCodeRepository struct {
	db *sqlx.DB
}

func NewResetCodeRepo(db *sqlx.DB) *ResetCodeRepository {
	return &ResetCodeRepository{db: db}
}

// Upsert writes the new code over any prior one for the email in a single
// statement, so two concurrent issuances serialize on the row and exactly
// one code survives.
func (r *ResetCodeRepository) Upsert(ctx context.Context, email, code string, expiresAt time.Time) (*domain.ResetCode, error) {
	const query = `
        INSERT INTO reset_code (email, code, expires_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (email) DO UPDATE
        SET code = EXCLUDED.code,
            expires_at = EXCLUDED.expires_at,
            created_at = NOW()
        RETURNING email, code, expires_at, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, code, expiresAt)
	var reset domain.ResetCode
	if err := row.StructScan(&reset); err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *ResetCodeRepository) Find(ctx context.Context, email, code string) (*domain.ResetCode, error) {
	const query = `
        SELECT email, code, expires_at, created_at
        FROM reset_code
        WHERE email = $1 AND code = $2
    `
	var reset domain.ResetCode
	if err := r.db.GetContext(ctx, &reset, query, email, code); err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *ResetCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM reset_code WHERE email = $1`
	_, err := r.db.ExecContext(ctx, query, email)
	return err
}
