package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eduliv/eduliv-go/internal/crypto"
)

func TestSessionAuthNoCookie(t *testing.T) {
	mw := SessionAuth("_edu_token", "test-secret")
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without a session cookie")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthInvalidToken(t *testing.T) {
	mw := SessionAuth("_edu_token", "test-secret")
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "_edu_token", Value: "garbage"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthValidToken(t *testing.T) {
	token, err := crypto.SignSession("user-1", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("SignSession() unexpected error: %v", err)
	}

	called := false
	mw := SessionAuth("_edu_token", "test-secret")
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, ok := UserIDFromContext(r.Context())
		if !ok || id != "user-1" {
			t.Errorf("UserIDFromContext() = (%q, %v), want (user-1, true)", id, ok)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "_edu_token", Value: token})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("handler not reached with a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestUserIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("UserIDFromContext() found a user ID in an empty context")
	}
}
