package models

import "time"

// Product domain model. Rate, Total and TaxAmount are fixed-point (2 fraction
// digits) and frozen at creation: Total = Rate * Quantity, TaxAmount = Total *
// 0.18. They are never recomputed on read. Products are immutable after
// creation; the only mutation is deletion by their owner.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Rate      Money     `gorm:"type:decimal(10,2);not null" json:"rate"`
	Total     Money     `gorm:"type:decimal(10,2);not null" json:"total"`
	TaxAmount Money     `gorm:"type:decimal(10,2);not null" json:"taxAmount"`
	CreatedAt time.Time `json:"createdAt"`
}
