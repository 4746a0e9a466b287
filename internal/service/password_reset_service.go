package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/langhub/Language_Hub_BackEnd/internal/repository/ports"
	"github.com/langhub/Language_Hub_BackEnd/internal/util"
)

var (
	ErrInvalidResetCode = errors.New("invalid OTP")
	ErrResetCodeExpired = errors.New("OTP expired")
)

type PasswordResetService struct {
	users  ports.UserRepository
	codes  ports.ResetCodeRepository
	mailer ports.Mailer
	ttl    time.Duration
	now    func() time.Time
}

func NewPasswordResetService(users ports.UserRepository, codes ports.ResetCodeRepository, mailer ports.Mailer, ttl time.Duration) *PasswordResetService {
	return &PasswordResetService{
		users:  users,
		codes:  codes,
		mailer: mailer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Request issues a fresh code for the email, superseding any earlier one,
// and delivers it. If delivery fails the code is withdrawn and the request
// fails: a code the user never received must not stay live.
func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := util.GenerateResetCode()
	if err != nil {
		return err
	}
	if _, err := s.codes.Upsert(ctx, email, code, s.now().Add(s.ttl)); err != nil {
		return err
	}

	if err := s.mailer.SendResetCode(ctx, email, code); err != nil {
		if delErr := s.codes.DeleteByEmail(ctx, email); delErr != nil {
			log.Printf("password reset: withdraw undelivered code for %s: %v", email, delErr)
		}
		return fmt.Errorf("send reset code: %w", err)
	}
	return nil
}

// Verify checks the (email, code) pair without consuming it.
func (s *PasswordResetService) Verify(ctx context.Context, email, code string) error {
	reset, err := s.codes.Find(ctx, normalizeEmail(email), code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidResetCode
		}
		return err
	}
	if reset.Expired(s.now()) {
		return ErrResetCodeExpired
	}
	return nil
}

// Reset consumes the code: it re-validates both the pair and the expiry,
// stores the new password and removes every code for the email.
func (s *PasswordResetService) Reset(ctx context.Context, email, code, newPassword string) error {
	if err := util.ValidatePassword(newPassword); err != nil {
		return err
	}

	email = normalizeEmail(email)
	reset, err := s.codes.Find(ctx, email, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidResetCode
		}
		return err
	}
	if reset.Expired(s.now()) {
		return ErrResetCodeExpired
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		return err
	}
	return s.codes.DeleteByEmail(ctx, email)
}
