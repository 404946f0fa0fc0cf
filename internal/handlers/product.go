package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/diewo77/invoicegen/internal/auth"
	"github.com/diewo77/invoicegen/internal/httpx"
	"github.com/diewo77/invoicegen/internal/services"
)

type ProductHandler struct {
	Svc *services.ProductService
}

func NewProductHandler(svc *services.ProductService) *ProductHandler {
	return &ProductHandler{Svc: svc}
}

type createProductReq struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Rate     string `json:"rate"` // decimal string, e.g. "10.00"
}

// Create: POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	var req createProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	product, err := h.Svc.Create(r.Context(), uid, req.Name, req.Quantity, req.Rate)
	if err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

// List: GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	products, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

// Delete: DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.JSONError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err := h.Svc.Delete(r.Context(), uid, uint(id)); err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
