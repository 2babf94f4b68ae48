package admin

import (
	"net/http"
	"testing"

	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/provider"
)

func seedAdmin(t *testing.T, c *provider.Container, username, password string) {
	t.Helper()
	hash, err := c.AuthService.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := c.AdminRepo.Create(&models.Admin{Username: username, PasswordHash: hash}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	r, c := newTestRouter(t)
	seedAdmin(t, c, "admin", "Secret-123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"Secret-123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body=%s", w.Code, w.Body.String())
	}

	var body LoginResponse
	decodeBody(t, w, &body)
	if body.Token == "" {
		t.Fatal("token should not be empty")
	}
	if body.ExpiresAt == "" {
		t.Fatal("expiresAt should not be empty")
	}
	if body.Admin["username"] != "admin" {
		t.Fatalf("admin payload mismatch: %+v", body.Admin)
	}

	claims, err := c.AuthService.ParseJWT(body.Token)
	if err != nil {
		t.Fatalf("issued token should parse: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("claims username want admin got %q", claims.Username)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, c := newTestRouter(t)
	seedAdmin(t, c, "admin", "Secret-123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"wrong"}`)
	assertErrorBody(t, w, http.StatusUnauthorized, "unauthorized", "Invalid username or password")
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"username":"nobody","password":"whatever"}`)
	assertErrorBody(t, w, http.StatusUnauthorized, "unauthorized", "Invalid username or password")
}

func TestLoginRequiresCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{}`)
	assertErrorBody(t, w, http.StatusBadRequest, "validation", "username and password are required")
}
