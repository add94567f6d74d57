package order

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/staterastore/statera-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

// CreateOrderInput accepts the two request shapes that exist in the
// wild: the storefront sends nested shippingAddress/paymentMethod
// objects, older API clients send flat prefixed fields. The nested
// value wins whenever both are present.

type ItemInput struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type AddressInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

type PaymentInput struct {
	Type       string `json:"type"`
	LastDigits string `json:"lastDigits"`
}

type CreateOrderInput struct {
	Items []ItemInput `json:"items"`
	Total *float64    `json:"total"`

	ShippingAddress *AddressInput `json:"shippingAddress"`
	PaymentMethod   *PaymentInput `json:"paymentMethod"`

	ShippingFirstName string `json:"shippingFirstName"`
	ShippingLastName  string `json:"shippingLastName"`
	ShippingAddress1  string `json:"shippingAddress1"`
	ShippingAddress2  string `json:"shippingAddress2"`
	ShippingCity      string `json:"shippingCity"`
	ShippingState     string `json:"shippingState"`
	ShippingZip       string `json:"shippingZip"`
	ShippingCountry   string `json:"shippingCountry"`

	PaymentMethodType string `json:"paymentMethodType"`
	PaymentLastDigits string `json:"paymentLastDigits"`
}

// Canonical is the flat-field payload every order is persisted from.
type Canonical struct {
	Items []ItemInput
	Total float64

	ShippingFirstName string
	ShippingLastName  string
	ShippingAddress1  string
	ShippingAddress2  string
	ShippingCity      string
	ShippingState     string
	ShippingZip       string
	ShippingCountry   string

	// Uppercase enum: CREDIT_CARD, BOLETO or PIX.
	PaymentMethodType string
	PaymentLastDigits string
}

const DefaultPaymentMethod = "CREDIT_CARD"

var paymentMethods = map[string]bool{
	"CREDIT_CARD": true,
	"BOLETO":      true,
	"PIX":         true,
}

// totalEpsilon is the largest accepted drift between a caller-supplied
// total and the item sum.
var totalEpsilon = decimal.NewFromFloat(0.01)

// ======================================================
// NORMALIZE
// ======================================================

func Normalize(in CreateOrderInput) (*Canonical, error) {
	if len(in.Items) == 0 {
		return nil, httperr.ErrValidation("empty_items", "Order needs at least one item.")
	}

	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, httperr.ErrValidation("invalid_quantity", "Item quantity must be at least 1.")
		}
		if it.Price < 0 {
			return nil, httperr.ErrValidation("invalid_price", "Item price cannot be negative.")
		}
	}

	pick := func(nested, flat string) string {
		if nested != "" {
			return nested
		}
		return flat
	}

	var addr AddressInput
	if in.ShippingAddress != nil {
		addr = *in.ShippingAddress
	}

	out := &Canonical{
		Items:             in.Items,
		ShippingFirstName: pick(addr.FirstName, in.ShippingFirstName),
		ShippingLastName:  pick(addr.LastName, in.ShippingLastName),
		ShippingAddress1:  pick(addr.Address1, in.ShippingAddress1),
		ShippingAddress2:  pick(addr.Address2, in.ShippingAddress2),
		ShippingCity:      pick(addr.City, in.ShippingCity),
		ShippingState:     pick(addr.State, in.ShippingState),
		ShippingZip:       pick(addr.Zip, in.ShippingZip),
		ShippingCountry:   pick(addr.Country, in.ShippingCountry),
	}

	required := []struct {
		field string
		value string
	}{
		{"shippingFirstName", out.ShippingFirstName},
		{"shippingLastName", out.ShippingLastName},
		{"shippingAddress1", out.ShippingAddress1},
		{"shippingCity", out.ShippingCity},
		{"shippingState", out.ShippingState},
		{"shippingZip", out.ShippingZip},
		{"shippingCountry", out.ShippingCountry},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, httperr.ErrValidation("missing_"+r.field, r.field+" is required.")
		}
	}

	var pay PaymentInput
	if in.PaymentMethod != nil {
		pay = *in.PaymentMethod
	}

	ptype := pick(pay.Type, in.PaymentMethodType)
	if ptype == "" {
		ptype = DefaultPaymentMethod
	}
	ptype = strings.ToUpper(strings.TrimSpace(ptype))
	if !paymentMethods[ptype] {
		return nil, httperr.ErrValidation("invalid_payment_method", "Payment method must be credit_card, boleto or pix.")
	}
	out.PaymentMethodType = ptype
	out.PaymentLastDigits = pick(pay.LastDigits, in.PaymentLastDigits)

	computed := itemsTotal(in.Items)
	if in.Total == nil {
		out.Total = computed.InexactFloat64()
	} else {
		supplied := decimal.NewFromFloat(*in.Total)
		if supplied.LessThanOrEqual(decimal.Zero) {
			return nil, httperr.ErrValidation("invalid_total", "Order total must be positive.")
		}
		if supplied.Sub(computed).Abs().GreaterThan(totalEpsilon) {
			return nil, httperr.ErrValidation("total_mismatch", "Order total does not match the item sum.")
		}
		out.Total = supplied.InexactFloat64()
	}

	if out.Total <= 0 {
		return nil, httperr.ErrValidation("invalid_total", "Order total must be positive.")
	}

	return out, nil
}

// ItemsTotal is the canonical Σ price×quantity, computed in decimal so
// integer-cent inputs never drift.
func ItemsTotal(items []ItemInput) float64 {
	return itemsTotal(items).InexactFloat64()
}

func itemsTotal(items []ItemInput) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		price := decimal.NewFromFloat(it.Price)
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}
