package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diewo77/invoicegen/internal/auth"
	"github.com/diewo77/invoicegen/internal/httpx"
	"github.com/diewo77/invoicegen/internal/models"
	"github.com/diewo77/invoicegen/internal/validation"
)

// AuthHandler owns registration, login, and the current-user lookup.
type AuthHandler struct {
	DB     *gorm.DB
	Tokens *auth.TokenManager
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{DB: db, Tokens: tokens}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

// Register: POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var v validation.Violations
	validation.Required("name", req.Name, "Name is required", &v)
	validation.Email("email", req.Email, "Invalid email address", &v)
	validation.MinLen("password", req.Password, 6, "Password must be at least 6 characters", &v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, v.First().Message)
		return
	}

	email := strings.TrimSpace(req.Email)
	var count int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("check existing user: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if count > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	user := models.User{Name: strings.TrimSpace(req.Name), Email: email, Password: string(hash)}
	if err := h.DB.Create(&user).Error; err != nil {
		log.Printf("create user: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.Tokens.Generate(user.ID, user.Email)
	if err != nil {
		log.Printf("issue token: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusCreated, authResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user.Public(),
	})
}

// Login: POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var v validation.Violations
	validation.Email("email", req.Email, "Invalid email address", &v)
	validation.Required("password", req.Password, "Password is required", &v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, v.First().Message)
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("lookup user: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Generate(user.ID, user.Email)
	if err != nil {
		log.Printf("issue token: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

// Me: GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	var user models.User
	if err := h.DB.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("load user: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, user.Public())
}
