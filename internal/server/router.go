package server

import (
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/invoicegen/internal/auth"
	"github.com/diewo77/invoicegen/internal/config"
	"github.com/diewo77/invoicegen/internal/handlers"
	"github.com/diewo77/invoicegen/internal/httpx"
	"github.com/diewo77/invoicegen/internal/pdf"
	"github.com/diewo77/invoicegen/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// --- Health endpoints ---
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		// Lightweight DB check (SELECT 1) – no detailed errors in the body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth endpoints
	ah := handlers.NewAuthHandler(db, tokens)
	mux.HandleFunc("POST /api/auth/register", ah.Register)
	mux.HandleFunc("POST /api/auth/login", ah.Login)
	mux.Handle("GET /api/auth/me", tokens.RequireAuth(http.HandlerFunc(ah.Me)))

	// Product endpoints
	ph := handlers.NewProductHandler(services.NewProductService(db))
	mux.Handle("POST /api/products", tokens.RequireAuth(http.HandlerFunc(ph.Create)))
	mux.Handle("GET /api/products", tokens.RequireAuth(http.HandlerFunc(ph.List)))
	mux.Handle("DELETE /api/products/{id}", tokens.RequireAuth(http.HandlerFunc(ph.Delete)))

	// Invoice endpoints
	ih := handlers.NewInvoiceHandler(services.NewInvoiceService(db), pdf.NewMarotoEngine())
	mux.Handle("POST /api/invoices", tokens.RequireAuth(http.HandlerFunc(ih.Create)))
	mux.Handle("GET /api/invoices", tokens.RequireAuth(http.HandlerFunc(ih.List)))
	mux.Handle("GET /api/invoices/{id}", tokens.RequireAuth(http.HandlerFunc(ih.Get)))
	mux.Handle("GET /api/invoices/{id}/view", tokens.RequireAuth(http.HandlerFunc(ih.View)))
	mux.Handle("GET /api/invoices/{id}/pdf", tokens.RequireAuth(http.HandlerFunc(ih.PDF)))

	return withRecover(withLogging(mux))
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
