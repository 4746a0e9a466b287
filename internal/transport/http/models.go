package http

import (
	"time"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
)

// AuthUser is the sanitized account representation returned by the API.
// It never carries the password hash.
type AuthUser struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toAuthUser(user *domain.User) AuthUser {
	return AuthUser{
		ID:           user.ID.String(),
		FullName:     user.FullName,
		Email:        user.Email,
		Role:         string(user.Role),
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
	}
}

func toAuthUsers(users []domain.User) []AuthUser {
	out := make([]AuthUser, 0, len(users))
	for i := range users {
		out = append(out, toAuthUser(&users[i]))
	}
	return out
}

// AuthResponse is returned by endpoints that issue a token pair.
type AuthResponse struct {
	Message      string   `json:"message"`
	User         AuthUser `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

// TokenResponse is returned by the refresh exchange.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type UpdateUserRequest struct {
	FullName     *string `json:"fullName"`
	Email        *string `json:"email"`
	ProfileImage *string `json:"profileImage"`
}

type DeleteUserRequest struct {
	Reason string `json:"reason"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

type SendMessageRequest struct {
	ChatID  string `json:"chatId"`
	Content string `json:"content"`
}

type SaveProgressRequest struct {
	Course string `json:"course"`
	Part   int    `json:"part"`
}

type SaveProgressResponse struct {
	Success   bool    `json:"success"`
	Completed []int64 `json:"completed"`
}

type SendMessageResponse struct {
	Reply string       `json:"reply"`
	Chat  *domain.Chat `json:"chat"`
}
