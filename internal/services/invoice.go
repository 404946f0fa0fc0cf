package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diewo77/invoicegen/internal/models"
	"github.com/diewo77/invoicegen/internal/validation"
)

var invoiceStatuses = map[string]bool{"draft": true, "sent": true, "paid": true}

// GenerateInput carries the recipient metadata and product selection for a new
// invoice. Monetary values never appear here: they are derived from the stored
// products.
type GenerateInput struct {
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	ClientCompany string `json:"clientCompany"`
	Status        string `json:"status"`
	DueDate       string `json:"dueDate"`
	ProductIDs    []uint `json:"productIds"`
}

// InvoiceService assembles invoices from product selections: it validates
// ownership of every referenced product, computes aggregate totals, and
// persists the invoice together with per-product line-item snapshots.
type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService { return &InvoiceService{db: db} }

// Generate creates one invoice plus its item snapshots, all-or-nothing. A
// single invalid product reference (missing or owned by someone else) aborts
// the whole operation with no rows written. Duplicate ids in the selection are
// looked up independently and legitimately double-count.
func (s *InvoiceService) Generate(ctx context.Context, ownerID uint, in GenerateInput) (*models.Invoice, error) {
	var v validation.Violations
	validation.Required("clientName", in.ClientName, "Client name is required", &v)
	validation.Email("clientEmail", in.ClientEmail, "Invalid email address", &v)
	if !v.Empty() {
		return nil, validationErr(v.First().Message)
	}
	status := in.Status
	if status == "" {
		status = "draft"
	}
	if !invoiceStatuses[status] {
		return nil, validationErr("Invalid status")
	}
	var dueDate *time.Time
	if in.DueDate != "" {
		d, err := parseDate(in.DueDate)
		if err != nil {
			return nil, validationErr("Invalid due date")
		}
		dueDate = &d
	}
	if len(in.ProductIDs) == 0 {
		return nil, validationErr("No products selected")
	}

	inv := models.Invoice{
		UserID:        ownerID,
		InvoiceNumber: newInvoiceNumber(),
		ClientName:    strings.TrimSpace(in.ClientName),
		ClientEmail:   strings.TrimSpace(in.ClientEmail),
		ClientCompany: strings.TrimSpace(in.ClientCompany),
		Status:        status,
		DueDate:       dueDate,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := make([]models.Product, 0, len(in.ProductIDs))
		for _, pid := range in.ProductIDs {
			var p models.Product
			// One lookup per id, filtered by owner: a foreign or missing product
			// is rejected without revealing which.
			if err := tx.Where("id = ? AND user_id = ?", pid, ownerID).First(&p).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return validationErr("Invalid product selection")
				}
				return fmt.Errorf("fetch product %d: %w", pid, err)
			}
			products = append(products, p)
		}

		subtotal := decimal.Zero
		totalTax := decimal.Zero
		for _, p := range products {
			subtotal = subtotal.Add(p.Total.Decimal)
			totalTax = totalTax.Add(p.TaxAmount.Decimal)
		}
		inv.Subtotal = models.NewMoney(subtotal.Round(2))
		inv.TotalTax = models.NewMoney(totalTax.Round(2))
		inv.TotalAmount = models.NewMoney(subtotal.Add(totalTax).Round(2))

		if err := tx.Create(&inv).Error; err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}
		items := make([]models.InvoiceItem, 0, len(products))
		for _, p := range products {
			items = append(items, models.InvoiceItem{
				InvoiceID:   inv.ID,
				ProductName: p.Name,
				Quantity:    p.Quantity,
				Rate:        p.Rate,
				Total:       p.Total,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("create invoice items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Items are fetched separately by callers that need them.
	inv.Items = nil
	return &inv, nil
}

// Get returns one invoice with its items ordered by creation. The same
// ownership-hiding policy as product deletion applies.
func (s *InvoiceService) Get(ctx context.Context, ownerID, invoiceID uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("invoice_items.id asc") }).
		Where("id = ? AND user_id = ?", invoiceID, ownerID).
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List returns the owner's invoices without items.
func (s *InvoiceService) List(ctx context.Context, ownerID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id desc").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// newInvoiceNumber produces a token unique across concurrent calls: the
// original timestamp scheme plus a random suffix so same-millisecond
// generations cannot collide.
func newInvoiceNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("INV-%d-%s", time.Now().UnixMilli(), suffix)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}
