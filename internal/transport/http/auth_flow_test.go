package http

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
	"github.com/langhub/Language_Hub_BackEnd/internal/service"
	"github.com/langhub/Language_Hub_BackEnd/internal/util"
)

// memUserRepo is an in-memory account directory backing the end-to-end
// handler tests.
type memUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*domain.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, fullName, email, passwordHash string, role domain.Role) (*domain.User, error) {
	user := &domain.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (m *memUserRepo) Update(ctx context.Context, id uuid.UUID, fullName, email, profileImage *string) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if fullName != nil {
		user.FullName = *fullName
	}
	if email != nil {
		user.Email = *email
	}
	if profileImage != nil {
		user.ProfileImage = profileImage
	}
	user.UpdatedAt = time.Now()
	return user, nil
}

func (m *memUserRepo) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	for _, user := range m.users {
		if user.Email == email {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, nil
}

func (m *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.users, id)
	return nil
}

type memResetCodeRepo struct {
	records map[string]*domain.ResetCode
}

func newMemResetCodeRepo() *memResetCodeRepo {
	return &memResetCodeRepo{records: map[string]*domain.ResetCode{}}
}

func (m *memResetCodeRepo) Upsert(ctx context.Context, email, code string, expiresAt time.Time) (*domain.ResetCode, error) {
	record := &domain.ResetCode{Email: email, Code: code, ExpiresAt: expiresAt, CreatedAt: time.Now()}
	m.records[email] = record
	return record, nil
}

func (m *memResetCodeRepo) Find(ctx context.Context, email, code string) (*domain.ResetCode, error) {
	record, ok := m.records[email]
	if !ok || record.Code != code {
		return nil, sql.ErrNoRows
	}
	return record, nil
}

func (m *memResetCodeRepo) DeleteByEmail(ctx context.Context, email string) error {
	delete(m.records, email)
	return nil
}

// captureMailer records outbound mail instead of sending it.
type captureMailer struct {
	lastResetEmail string
	lastResetCode  string
}

func (m *captureMailer) SendResetCode(ctx context.Context, email, code string) error {
	m.lastResetEmail = email
	m.lastResetCode = code
	return nil
}

func (m *captureMailer) SendAccountDeleted(ctx context.Context, email, fullName, reason string) error {
	return nil
}

type stubStorage struct{}

func (stubStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	return "http://storage.local/" + bucket + "/" + objectName, nil
}

func newTestServer(t *testing.T) (*echo.Echo, *memUserRepo, *captureMailer) {
	t.Helper()

	users := newMemUserRepo()
	codes := newMemResetCodeRepo()
	mailer := &captureMailer{}
	tokens := util.NewTokenManager("access-secret", "refresh-secret", 30*time.Minute, 7*24*time.Hour)

	authService := service.NewAuthService(users, tokens)
	userService := service.NewUserService(users, mailer, stubStorage{}, service.UserServiceConfig{
		AvatarBucket:   "avatars",
		AvatarMaxBytes: 1 << 20,
	})
	resetService := service.NewPasswordResetService(users, codes, mailer, 2*time.Minute)

	e := NewRouter([]string{"*"})
	RegisterAuthRoutes(e, authService)
	RegisterUserRoutes(e, authService, userService)
	RegisterPasswordRoutes(e, resetService)
	return e, users, mailer
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// TestPasswordResetFlow walks the full account lifecycle: register, log in,
// read the profile, request a reset code, fail the wrong-code and
// weak-password paths, reset, then confirm the old password is dead and the
// new one works.
func TestPasswordResetFlow(t *testing.T) {
	e, _, mailer := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/user/register", "", map[string]string{
		"fullName": "Alice Example",
		"email":    "Alice@Example.com",
		"password": "Start1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var registered AuthResponse
	decodeBody(t, rec, &registered)
	if registered.User.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", registered.User.Email)
	}
	if registered.AccessToken == "" || registered.RefreshToken == "" {
		t.Fatalf("expected a token pair on registration")
	}

	rec = doJSON(t, e, http.MethodGet, "/api/v1/user/me", registered.AccessToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var me struct {
		User AuthUser `json:"user"`
	}
	decodeBody(t, rec, &me)
	if me.User.ID != registered.User.ID {
		t.Fatalf("expected /me to return the registered account")
	}

	rec = doJSON(t, e, http.MethodPost, "/api/password/forgot", "", map[string]string{
		"email": "alice@example.com",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("forgot: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if mailer.lastResetCode == "" {
		t.Fatalf("expected a reset code to be delivered")
	}
	code := mailer.lastResetCode

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	rec = doJSON(t, e, http.MethodPost, "/api/password/verify-otp", "", map[string]string{
		"email": "alice@example.com",
		"code":  wrong,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("verify wrong code: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/password/reset", "", map[string]string{
		"email":       "alice@example.com",
		"code":        code,
		"newPassword": "weak",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("weak reset: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/password/reset", "", map[string]string{
		"email":       "alice@example.com",
		"code":        code,
		"newPassword": "Fresh1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodPost, "/api/v1/user/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "Start1",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login with old password: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/v1/user/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "Fresh1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login with new password: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRefreshExchange(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/user/register", "", map[string]string{
		"fullName": "Bob Example",
		"email":    "bob@example.com",
		"password": "Start1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}
	var registered AuthResponse
	decodeBody(t, rec, &registered)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/user/refresh", "", map[string]string{
		"refreshToken": registered.RefreshToken,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var pair TokenResponse
	decodeBody(t, rec, &pair)
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a fresh token pair")
	}

	// An access token is not accepted in the refresh exchange.
	rec = doJSON(t, e, http.MethodPost, "/api/v1/user/refresh", "", map[string]string{
		"refreshToken": registered.AccessToken,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("refresh with access token: expected 401, got %d", rec.Code)
	}
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	e, users, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/user/me", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/v1/user/me", "not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", rec.Code)
	}

	// A live token for a deleted account is rejected at the gate.
	rec = doJSON(t, e, http.MethodPost, "/api/v1/user/register", "", map[string]string{
		"fullName": "Carol Example",
		"email":    "carol@example.com",
		"password": "Start1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}
	var registered AuthResponse
	decodeBody(t, rec, &registered)

	id, err := uuid.Parse(registered.User.ID)
	if err != nil {
		t.Fatalf("parse user id: %v", err)
	}
	if err := users.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/v1/user/me", registered.AccessToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("deleted account: expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/user/register", "", map[string]string{
		"fullName": "Erin Example",
		"email":    "erin@example.com",
		"password": "Start1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}
	var registered AuthResponse
	decodeBody(t, rec, &registered)

	// An id that is not a UUID reads as an unknown account, not a server error.
	rec = doJSON(t, e, http.MethodDelete, "/api/v1/user/delete/not-a-uuid", registered.AccessToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unparseable id: expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodDelete, "/api/v1/user/delete/"+uuid.NewString(), registered.AccessToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/user/register", "", map[string]string{
		"fullName": "Dave Example",
		"email":    "dave@example.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing password: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/v1/user/register", "", map[string]string{
		"fullName": "Dave Example",
		"email":    "dave@example.com",
		"password": "nodigitshere",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("weak password: expected 400, got %d", rec.Code)
	}

	for i := 0; i < 2; i++ {
		rec = doJSON(t, e, http.MethodPost, "/api/v1/user/register", "", map[string]string{
			"fullName": "Dave Example",
			"email":    "dave@example.com",
			"password": "Start1",
		})
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate email: expected 409, got %d", rec.Code)
	}
}
