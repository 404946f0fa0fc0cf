package models

import "time"

// Invoicing models
type Invoice struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        uint          `gorm:"not null;index" json:"userId"`
	InvoiceNumber string        `gorm:"unique;not null" json:"invoiceNumber"`
	ClientName    string        `gorm:"not null" json:"clientName"`
	ClientEmail   string        `gorm:"not null" json:"clientEmail"`
	ClientCompany string        `json:"clientCompany,omitempty"`
	Subtotal      Money         `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TotalTax      Money         `gorm:"type:decimal(10,2);not null" json:"totalTax"`
	TotalAmount   Money         `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Status        string        `gorm:"not null;default:'draft'" json:"status"` // draft, sent, paid
	Items         []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	DueDate       *time.Time    `json:"dueDate,omitempty"`
}

// InvoiceItem is a point-in-time snapshot of a product's commercial fields.
// It carries no product foreign key: deleting the source product later must
// not change an existing invoice.
type InvoiceItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	InvoiceID   uint   `gorm:"not null;index" json:"invoiceId"`
	ProductName string `gorm:"not null" json:"productName"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	Rate        Money  `gorm:"type:decimal(10,2);not null" json:"rate"`
	Total       Money  `gorm:"type:decimal(10,2);not null" json:"total"`
}
