package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
)

// UserRepository is the account directory. Emails are stored lowercased;
// callers normalize before lookup so uniqueness and lookup agree.
type UserRepository interface {
	Create(ctx context.Context, fullName, email, passwordHash string, role domain.Role) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, fullName, email, profileImage *string) (*domain.User, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
