package models

import "time"

// OrderItem captures the unit price at order time. Later catalog price
// changes never touch historical orders.
type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
