package dto

import (
	"strings"
	"time"

	"github.com/staterastore/statera-api/internal/models"
)

// Canonical order payload: flat columns folded back into the nested
// shape the storefront consumes, status and payment type lowercase.

type OrderItemResponse struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type ShippingAddressResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

type PaymentMethodResponse struct {
	Type       string `json:"type"`
	LastDigits string `json:"lastDigits,omitempty"`
}

type OrderResponse struct {
	ID              uint                    `json:"id"`
	Date            string                  `json:"date"`
	Status          string                  `json:"status"`
	Items           []OrderItemResponse     `json:"items"`
	Total           float64                 `json:"total"`
	ShippingAddress ShippingAddressResponse `json:"shippingAddress"`
	PaymentMethod   PaymentMethodResponse   `json:"paymentMethod"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func OrderResponseFrom(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return OrderResponse{
		ID:     o.ID,
		Date:   o.CreatedAt.UTC().Format(time.RFC3339),
		Status: strings.ToLower(o.Status),
		Items:  items,
		Total:  o.Total,
		ShippingAddress: ShippingAddressResponse{
			FirstName: o.ShippingFirstName,
			LastName:  o.ShippingLastName,
			Address1:  o.ShippingAddress1,
			Address2:  o.ShippingAddress2,
			City:      o.ShippingCity,
			State:     o.ShippingState,
			Zip:       o.ShippingZip,
			Country:   o.ShippingCountry,
		},
		PaymentMethod: PaymentMethodResponse{
			Type:       strings.ToLower(o.PaymentMethodType),
			LastDigits: o.PaymentLastDigits,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func OrderResponsesFrom(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, OrderResponseFrom(&orders[i]))
	}
	return out
}
