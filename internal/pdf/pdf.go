// Package pdf projects a persisted invoice and its items into a fixed document
// layout: HTML markup for on-screen viewing and PDF bytes for export. The
// projection is deterministic; every date shown comes from the invoice record,
// never from the clock at render time.
package pdf

import "github.com/diewo77/invoicegen/internal/models"

// RenderError wraps a failure of the document engine. Callers report it as a
// generation failure; no partial document is ever returned alongside it.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "render document: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

// LineItem is one snapshotted product row, money pre-formatted to two decimals
// with the currency symbol.
type LineItem struct {
	Name     string
	Quantity int
	Rate     string
	Total    string
}

// InvoiceData is everything the fixed layout needs, already formatted.
type InvoiceData struct {
	InvoiceNumber string
	Date          string
	DueDate       string
	ClientName    string
	ClientEmail   string
	ClientCompany string
	Items         []LineItem
	Subtotal      string
	TotalTax      string
	TotalAmount   string
}

// FromInvoice builds the renderable projection from a persisted invoice with
// its items loaded.
func FromInvoice(inv *models.Invoice) InvoiceData {
	data := InvoiceData{
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.CreatedAt.Format("1/2/2006"),
		DueDate:       "N/A",
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientCompany: inv.ClientCompany,
		Subtotal:      money(inv.Subtotal),
		TotalTax:      money(inv.TotalTax),
		TotalAmount:   money(inv.TotalAmount),
	}
	if data.ClientCompany == "" {
		data.ClientCompany = "N/A"
	}
	if inv.DueDate != nil {
		data.DueDate = inv.DueDate.Format("1/2/2006")
	}
	for _, it := range inv.Items {
		data.Items = append(data.Items, LineItem{
			Name:     it.ProductName,
			Quantity: it.Quantity,
			Rate:     money(it.Rate),
			Total:    money(it.Total),
		})
	}
	return data
}

func money(m models.Money) string { return "$" + m.StringFixed(2) }
