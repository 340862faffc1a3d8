package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-editor-backend/internal/users"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, users.Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := users.NewMemoryRepo()
	svc := NewPasswordService(repo)

	r := gin.New()
	api := r.Group("/api/v1")
	svc.RegisterRoutes(api)
	return r, repo
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSignupLoginAndSession(t *testing.T) {
	router, _ := setupAuthRouter(t)

	resp := postJSON(t, router, "/api/v1/auth/signup", map[string]string{
		"email":    "Ada@Example.com",
		"password": "correct horse",
		"fullName": "Ada Lovelace",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	if created.Token == "" {
		t.Fatalf("expected a session token")
	}
	if created.User.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %s", created.User.Email)
	}

	// Login with different email casing still works.
	resp = postJSON(t, router, "/api/v1/auth/login", map[string]string{
		"email":    "ADA@example.COM",
		"password": "correct horse",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var logged struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&logged); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+logged.Token)
	sessionResp := httptest.NewRecorder()
	router.ServeHTTP(sessionResp, req)
	if sessionResp.Code != http.StatusOK {
		t.Fatalf("session: expected 200, got %d", sessionResp.Code)
	}
	var session struct {
		UserID string `json:"userId"`
		Email  string `json:"email"`
	}
	if err := json.NewDecoder(sessionResp.Body).Decode(&session); err != nil {
		t.Fatalf("decode session response: %v", err)
	}
	if session.UserID != created.User.ID {
		t.Fatalf("session user mismatch: %s vs %s", session.UserID, created.User.ID)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	router, _ := setupAuthRouter(t)

	payload := map[string]string{"email": "dup@example.com", "password": "longenough"}
	if resp := postJSON(t, router, "/api/v1/auth/signup", payload); resp.Code != http.StatusCreated {
		t.Fatalf("first signup: expected 201, got %d", resp.Code)
	}
	if resp := postJSON(t, router, "/api/v1/auth/signup", payload); resp.Code != http.StatusConflict {
		t.Fatalf("second signup: expected 409, got %d", resp.Code)
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	router, _ := setupAuthRouter(t)

	resp := postJSON(t, router, "/api/v1/auth/signup", map[string]string{
		"email":    "short@example.com",
		"password": "seven77",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := setupAuthRouter(t)

	if resp := postJSON(t, router, "/api/v1/auth/signup", map[string]string{
		"email": "ada@example.com", "password": "correct horse",
	}); resp.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", resp.Code)
	}

	resp := postJSON(t, router, "/api/v1/auth/login", map[string]string{
		"email": "ada@example.com", "password": "wrong horse!",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestLoginOAuthOnlyAccount(t *testing.T) {
	router, repo := setupAuthRouter(t)

	if err := repo.Upsert(context.Background(), users.User{
		ID:    "google:123",
		Email: "oauth@example.com",
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	resp := postJSON(t, router, "/api/v1/auth/login", map[string]string{
		"email": "oauth@example.com", "password": "whatever1",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for oauth-only account, got %d", resp.Code)
	}
}
