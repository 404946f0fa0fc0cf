package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diewo77/invoicegen/internal/models"
	"github.com/diewo77/invoicegen/internal/validation"
)

// TaxRate is the fixed 18% surcharge applied to every product total.
// It is intentionally not configurable.
var TaxRate = decimal.New(18, -2)

// ProductService owns per-user product records and their derived monetary
// fields. Total and TaxAmount are computed once here and frozen; no other code
// path writes them.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService { return &ProductService{db: db} }

// Create validates the input, derives total and tax, and inserts one product
// owned by ownerID. Rate arrives as a decimal string to keep binary floating
// point off the API boundary.
func (s *ProductService) Create(ctx context.Context, ownerID uint, name string, quantity int, rate string) (*models.Product, error) {
	var v validation.Violations
	validation.Required("name", name, "Product name is required", &v)
	validation.MinInt("quantity", quantity, 1, "Quantity must be at least 1", &v)
	if !v.Empty() {
		return nil, validationErr(v.First().Message)
	}
	rateDec, err := decimal.NewFromString(strings.TrimSpace(rate))
	if err != nil || !rateDec.IsPositive() {
		return nil, validationErr("Rate must be a positive number")
	}

	rateDec = rateDec.Round(2)
	total := rateDec.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	tax := total.Mul(TaxRate).Round(2)

	p := models.Product{
		UserID:    ownerID,
		Name:      strings.TrimSpace(name),
		Quantity:  quantity,
		Rate:      models.NewMoney(rateDec),
		Total:     models.NewMoney(total),
		TaxAmount: models.NewMoney(tax),
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &p, nil
}

// List returns all products owned by ownerID.
func (s *ProductService) List(ctx context.Context, ownerID uint) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Delete removes a product owned by ownerID. A single query filtered by both id
// and owner keeps "not found" and "not owned" indistinguishable.
func (s *ProductService) Delete(ctx context.Context, ownerID, productID uint) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", productID, ownerID).Delete(&models.Product{})
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
