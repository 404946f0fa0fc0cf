package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, err := tm.Generate(42, "a@b.test")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	uid, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if uid != 42 {
		t.Fatalf("uid = %d, want 42", uid)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", time.Hour)
	other := NewTokenManager("secret-b", time.Hour)
	token, err := tm.Generate(1, "a@b.test")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Fatal("expected verification to fail with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)
	token, err := tm.Generate(1, "a@b.test")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := tm.Verify(token); err == nil {
		t.Fatal("expected verification of expired token to fail")
	}
}

func TestRequireAuth(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	var gotUID uint
	h := tm.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// Missing token
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: got %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Access token required") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	// Malformed token
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("bad token: got %d, want 403", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid token") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	// Valid token
	token, err := tm.Generate(7, "a@b.test")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: got %d, want 200", w.Code)
	}
	if gotUID != 7 {
		t.Fatalf("context uid = %d, want 7", gotUID)
	}
}
