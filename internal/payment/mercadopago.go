package payment

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/staterastore/statera-api/internal/config"
	"github.com/staterastore/statera-api/internal/models"
)

// Service wraps the MercadoPago payment API. Approved payments are the
// external event that moves an order from pending to processing.
type Service struct {
	payments mppayment.Client
}

// NewService builds the MercadoPago client. Without a configured token
// the service comes back disabled: every surface that would talk to the
// provider must check Enabled first.
func NewService(cfg *config.Config) (*Service, error) {
	if cfg.MercadoPagoToken == "" {
		return &Service{}, nil
	}

	mpcfg, err := mpconfig.New(cfg.MercadoPagoToken)
	if err != nil {
		return nil, err
	}

	return &Service{payments: mppayment.NewClient(mpcfg)}, nil
}

// Enabled reports whether a provider token was configured.
func (s *Service) Enabled() bool {
	return s != nil && s.payments != nil
}

// methodIDFor maps the stored payment enum to a MercadoPago payment
// method id. Card payments need a tokenized card from the storefront,
// so they are not created here.
func methodIDFor(paymentMethodType string) string {
	switch paymentMethodType {
	case "PIX":
		return "pix"
	case "BOLETO":
		return "bolbradesco"
	}
	return ""
}

// CreateForOrder creates a pix or boleto payment for a pending order.
// Returns nil without error when the order's method has no offline
// flow.
func (s *Service) CreateForOrder(ctx context.Context, o *models.Order) (*mppayment.Response, error) {
	methodID := methodIDFor(o.PaymentMethodType)
	if methodID == "" {
		return nil, nil
	}

	req := mppayment.Request{
		TransactionAmount: o.Total,
		Description:       fmt.Sprintf("Statera order #%d", o.ID),
		PaymentMethodID:   methodID,
		ExternalReference: strconv.FormatUint(uint64(o.ID), 10),
		Payer: &mppayment.PayerRequest{
			Email:     o.Client.Email,
			FirstName: o.ShippingFirstName,
			LastName:  o.ShippingLastName,
		},
	}

	return s.payments.Create(ctx, req)
}

func (s *Service) GetPayment(ctx context.Context, id int) (*mppayment.Response, error) {
	return s.payments.Get(ctx, id)
}

// OrderIDFromReference recovers the order id a payment was created for.
func OrderIDFromReference(ref string) (uint, error) {
	id, err := strconv.ParseUint(ref, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
