package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diewo77/invoicegen/internal/auth"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *auth.TokenManager) {
	t.Helper()
	db := setupTestDB(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthHandler(db, tokens), tokens
}

func TestRegisterLoginMe(t *testing.T) {
	h, tokens := newAuthHandler(t)

	regBody := `{"name":"Test User","email":"user@example.com","password":"secret1"}`
	w := httptest.NewRecorder()
	h.Register(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(regBody)))
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var reg struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reg.Token == "" || reg.User.Email != "user@example.com" {
		t.Fatalf("unexpected register payload: %+v", reg)
	}
	if uid, err := tokens.Verify(reg.Token); err != nil || uid != reg.User.ID {
		t.Fatalf("register token invalid: uid=%d err=%v", uid, err)
	}

	// Duplicate registration
	w = httptest.NewRecorder()
	h.Register(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(regBody)))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "User already exists") {
		t.Fatalf("duplicate: got %d body=%s", w.Code, w.Body.String())
	}

	// Login
	w = httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"user@example.com","password":"secret1"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	// Wrong password
	w = httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"user@example.com","password":"wrong"}`)))
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "Invalid credentials") {
		t.Fatalf("wrong password: got %d body=%s", w.Code, w.Body.String())
	}

	// Unknown user reads identically to a wrong password.
	w = httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"ghost@example.com","password":"secret1"}`)))
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "Invalid credentials") {
		t.Fatalf("unknown user: got %d body=%s", w.Code, w.Body.String())
	}

	// Me
	w = httptest.NewRecorder()
	h.Me(w, authed(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), reg.User.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200 got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("me leaked password field: %s", w.Body.String())
	}
}

func TestRegisterValidationMessages(t *testing.T) {
	h, _ := newAuthHandler(t)

	cases := []struct {
		body    string
		wantMsg string
	}{
		{`{"email":"user@example.com","password":"secret1"}`, "Name is required"},
		{`{"name":"U","email":"bad","password":"secret1"}`, "Invalid email address"},
		{`{"name":"U","email":"user@example.com","password":"abc"}`, "Password must be at least 6 characters"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		h.Register(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tc.body)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 got %d", tc.body, w.Code)
		}
		if !strings.Contains(w.Body.String(), tc.wantMsg) {
			t.Fatalf("body %s: want %q in %s", tc.body, tc.wantMsg, w.Body.String())
		}
	}
}
