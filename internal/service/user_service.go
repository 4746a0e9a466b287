package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path"

	"github.com/google/uuid"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
	"github.com/langhub/Language_Hub_BackEnd/internal/media"
	"github.com/langhub/Language_Hub_BackEnd/internal/repository/ports"
)

type UserServiceConfig struct {
	AvatarBucket   string
	AvatarMaxBytes int64
}

type UserService struct {
	users   ports.UserRepository
	mailer  ports.Mailer
	storage ports.ObjectStorage
	cfg     UserServiceConfig
}

func NewUserService(users ports.UserRepository, mailer ports.Mailer, storage ports.ObjectStorage, cfg UserServiceConfig) *UserService {
	return &UserService{users: users, mailer: mailer, storage: storage, cfg: cfg}
}

// Update applies a partial profile change. A changed email is lowercased so
// uniqueness and lookup keep agreeing.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, fullName, email, profileImage *string) (*domain.User, error) {
	if email != nil {
		normalized := normalizeEmail(*email)
		email = &normalized
	}
	user, err := s.users.Update(ctx, id, fullName, email, profileImage)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Delete removes the account and sends a best-effort notice. Notification
// failure never blocks the deletion.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID, reason string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.mailer.SendAccountDeleted(ctx, user.Email, user.FullName, reason); err != nil {
		log.Printf("account deletion notice for %s failed: %v", user.Email, err)
	}
	return nil
}

// UploadAvatar validates the image, stores it and persists the resulting URL
// as the user's profile image.
func (s *UserService) UploadAvatar(ctx context.Context, user *domain.User, upload media.Upload) (*domain.User, error) {
	data, contentType, err := media.ValidateImage(upload, s.cfg.AvatarMaxBytes, media.DefaultMaxDimension)
	if err != nil {
		return nil, err
	}

	ext := path.Ext(upload.FileName)
	if ext == "" {
		ext = extensionFor(contentType)
	}
	objectName := fmt.Sprintf("avatars/%s%s", user.ID, ext)

	url, err := s.storage.Upload(ctx, s.cfg.AvatarBucket, objectName, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	return s.Update(ctx, user.ID, nil, nil, &url)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
