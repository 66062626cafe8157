package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

const testSecret = "test-secret"

type fixedUserRepo struct {
	user *domain.User
}

func (r *fixedUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, domain.ErrInvalidInput
}

func (r *fixedUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fixedUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fixedUserRepo) UpdateProfile(context.Context, string, ports.ProfileUpdate) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fixedUserRepo) SetResume(context.Context, string, domain.Resume) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fixedUserRepo) AddSavedJob(context.Context, string, domain.SavedJob) ([]domain.SavedJob, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fixedUserRepo) RemoveSavedJob(context.Context, string, string) ([]domain.SavedJob, error) {
	return nil, domain.ErrUserNotFound
}

func mintToken(t *testing.T, method jwt.SigningMethod, subject string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invoke(t *testing.T, repo ports.UserRepository, authorization string) (error, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret, repo)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c), c
}

func TestAuth_ValidToken(t *testing.T) {
	user := &domain.User{ID: "user_1", Email: "alice@example.com"}
	repo := &fixedUserRepo{user: user}
	token := mintToken(t, jwt.SigningMethodHS256, "user_1", time.Hour)

	err, c := invoke(t, repo, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}

	got, ok := c.Get("user").(*domain.User)
	if !ok || got.ID != "user_1" {
		t.Fatalf("user not injected into context: %#v", c.Get("user"))
	}
}

func TestAuth_Rejections(t *testing.T) {
	repo := &fixedUserRepo{user: &domain.User{ID: "user_1"}}

	cases := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"malformed token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + mintToken(t, jwt.SigningMethodHS256, "user_1", -time.Hour)},
		{"empty subject", "Bearer " + mintToken(t, jwt.SigningMethodHS256, "", time.Hour)},
		{"deleted account", "Bearer " + mintToken(t, jwt.SigningMethodHS256, "user_gone", time.Hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err, _ := invoke(t, repo, tc.authorization)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", httpErr.Code)
			}
		})
	}
}

func TestAuth_WrongSigningKey(t *testing.T) {
	repo := &fixedUserRepo{user: &domain.User{ID: "user_1"}}

	claims := jwt.RegisteredClaims{
		Subject:   "user_1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	gateErr, _ := invoke(t, repo, "Bearer "+forged)
	httpErr, ok := gateErr.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged signature, got %v", gateErr)
	}
}
