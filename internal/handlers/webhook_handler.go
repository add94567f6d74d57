package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	domain "github.com/staterastore/statera-api/internal/domain/order"
	"github.com/staterastore/statera-api/internal/payment"
	ucorder "github.com/staterastore/statera-api/internal/usecase/order"
)

// PaymentFetcher is the slice of the payment service the webhook needs.
type PaymentFetcher interface {
	Enabled() bool
	GetPayment(ctx context.Context, id int) (*mppayment.Response, error)
}

// WebhookHandler receives MercadoPago payment notifications. An
// approved payment is the external event that advances an order from
// pending to processing.
type WebhookHandler struct {
	payments PaymentFetcher
	updateUC *ucorder.UpdateOrder
}

func NewWebhookHandler(
	payments PaymentFetcher,
	updateUC *ucorder.UpdateOrder,
) *WebhookHandler {
	return &WebhookHandler{
		payments: payments,
		updateUC: updateUC,
	}
}

type mercadoPagoNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// MercadoPago always responds 200 once the notification is accepted;
// the provider retries aggressively on anything else.
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	var n mercadoPagoNotification
	if err := c.ShouldBindJSON(&n); err != nil || n.Type != "payment" {
		c.Status(http.StatusOK)
		return
	}

	paymentID, err := strconv.Atoi(n.Data.ID)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	if !h.payments.Enabled() {
		c.Status(http.StatusOK)
		return
	}

	p, err := h.payments.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("webhook: fetch payment %d: %v", paymentID, err)
		c.Status(http.StatusOK)
		return
	}

	if p.Status != "approved" {
		c.Status(http.StatusOK)
		return
	}

	orderID, err := payment.OrderIDFromReference(p.ExternalReference)
	if err != nil {
		log.Printf("webhook: payment %d has no order reference", paymentID)
		c.Status(http.StatusOK)
		return
	}

	status := string(domain.StatusProcessing)
	if _, err := h.updateUC.Execute(c.Request.Context(), orderID, ucorder.UpdateOrderInput{
		Status: &status,
	}); err != nil {
		// Terminal or already-advanced orders stay where they are.
		log.Printf("webhook: advance order %d: %v", orderID, err)
	}

	c.Status(http.StatusOK)
}
