package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/diewo77/invoicegen/internal/auth"
	"github.com/diewo77/invoicegen/internal/httpx"
	"github.com/diewo77/invoicegen/internal/models"
	"github.com/diewo77/invoicegen/internal/pdf"
	"github.com/diewo77/invoicegen/internal/services"
)

type InvoiceHandler struct {
	Svc    *services.InvoiceService
	Engine pdf.Engine
}

func NewInvoiceHandler(svc *services.InvoiceService, engine pdf.Engine) *InvoiceHandler {
	return &InvoiceHandler{Svc: svc, Engine: engine}
}

// Create: POST /api/invoices
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	var in services.GenerateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	inv, err := h.Svc.Generate(r.Context(), uid, in)
	if err != nil {
		respondServiceError(w, err, "Invoice not found")
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

// List: GET /api/invoices
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	invoices, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		respondServiceError(w, err, "Invoice not found")
		return
	}
	httpx.JSON(w, http.StatusOK, invoices)
}

// Get: GET /api/invoices/{id}
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// View: GET /api/invoices/{id}/view – the populated invoice markup for
// on-screen display.
func (h *InvoiceHandler) View(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}
	html, err := pdf.HTML(pdf.FromInvoice(inv))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to render invoice")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// PDF: GET /api/invoices/{id}/pdf
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}
	data, err := h.Engine.Render(pdf.FromInvoice(inv))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="invoice-`+inv.InvoiceNumber+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// load resolves {id}, fetches the invoice with items under the ownership
// policy, and writes the error response itself when it fails.
func (h *InvoiceHandler) load(w http.ResponseWriter, r *http.Request) (*models.Invoice, bool) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.JSONError(w, http.StatusNotFound, "Invoice not found")
		return nil, false
	}
	invoice, err := h.Svc.Get(r.Context(), uid, uint(id))
	if err != nil {
		respondServiceError(w, err, "Invoice not found")
		return nil, false
	}
	return invoice, true
}
