package ports

import (
	"context"
	"time"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
)

type ResetCodeRepository interface {
	// Upsert replaces any existing code for the email in a single atomic
	// write, restarting the expiry window.
	Upsert(ctx context.Context, email, code string, expiresAt time.Time) (*domain.ResetCode, error)
	// Find returns the record matching the exact (email, code) pair.
	// Expiry is not checked here; callers decide how to report it.
	Find(ctx context.Context, email, code string) (*domain.ResetCode, error)
	DeleteByEmail(ctx context.Context, email string) error
}
