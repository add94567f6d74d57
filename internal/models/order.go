package models

import "time"

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null;index" json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Total  float64 `gorm:"not null" json:"total"`
	Status string  `gorm:"size:20;default:'pending'" json:"status"`

	ShippingFirstName string `gorm:"size:100;not null" json:"shipping_first_name"`
	ShippingLastName  string `gorm:"size:100;not null" json:"shipping_last_name"`
	ShippingAddress1  string `gorm:"size:255;not null" json:"shipping_address1"`
	ShippingAddress2  string `gorm:"size:255" json:"shipping_address2"`
	ShippingCity      string `gorm:"size:100;not null" json:"shipping_city"`
	ShippingState     string `gorm:"size:100;not null" json:"shipping_state"`
	ShippingZip       string `gorm:"size:20;not null" json:"shipping_zip"`
	ShippingCountry   string `gorm:"size:100;not null" json:"shipping_country"`

	// Stored uppercase: CREDIT_CARD, BOLETO or PIX.
	PaymentMethodType string `gorm:"size:20;not null" json:"payment_method_type"`
	PaymentLastDigits string `gorm:"size:4" json:"payment_last_digits"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
