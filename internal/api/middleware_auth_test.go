package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wellspringhq/wellspring/internal/models"
	"github.com/wellspringhq/wellspring/internal/services"
)

type fakeUserRepository struct {
	users map[uint]models.User
}

func (fake *fakeUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range fake.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (fake *fakeUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range fake.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, errors.New("user not found")
}

func (fake *fakeUserRepository) FindByID(userID uint) (models.User, error) {
	user, ok := fake.users[userID]
	if !ok {
		return models.User{}, errors.New("user not found")
	}
	return user, nil
}

func (fake *fakeUserRepository) Create(user *models.User) error {
	user.ID = uint(len(fake.users) + 1)
	fake.users[user.ID] = *user
	return nil
}

func (fake *fakeUserRepository) Save(user *models.User) error {
	if _, ok := fake.users[user.ID]; !ok {
		return errors.New("user not found")
	}
	fake.users[user.ID] = *user
	return nil
}

func (fake *fakeUserRepository) DeleteAccountAndRelatedData(userID uint) error {
	if _, ok := fake.users[userID]; !ok {
		return errors.New("user not found")
	}
	delete(fake.users, userID)
	return nil
}

func newAuthTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	repo := &fakeUserRepository{users: map[uint]models.User{
		1: {ID: 1, Email: "whoami@example.com", DisplayName: "Whoami"},
	}}
	handler := &Handler{
		secretKey: []byte("test-secret-key"),
		location:  time.UTC,
		auth:      services.NewAuthService(repo),
	}

	app := fiber.New()
	app.Get("/protected", handler.AuthRequired, func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return apiError(c, fiber.StatusInternalServerError, "user missing from context")
		}
		return c.SendString(user.Email)
	})
	return app, handler
}

func TestAuthRequiredRejectsMissingCookie(t *testing.T) {
	app, _ := newAuthTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	app, handler := newAuthTestApp(t)

	token, err := handler.buildToken(&models.User{ID: 1}, time.Hour)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Cookie", authCookieName+"="+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}

func TestAuthRequiredRejectsTokenSignedWithOtherKey(t *testing.T) {
	app, _ := newAuthTestApp(t)

	claims := authClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Cookie", authCookieName+"="+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for foreign signature, got %d", response.StatusCode)
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	app, handler := newAuthTestApp(t)

	claims := authClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Cookie", authCookieName+"="+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for expired token, got %d", response.StatusCode)
	}
}

func TestAuthRequiredRejectsTokenForUnknownUser(t *testing.T) {
	app, handler := newAuthTestApp(t)

	token, err := handler.buildToken(&models.User{ID: 42}, time.Hour)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Cookie", authCookieName+"="+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for unknown user, got %d", response.StatusCode)
	}
}
