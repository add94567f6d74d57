package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staterastore/statera-api/internal/config"
	"github.com/staterastore/statera-api/internal/models"
)

func TestServiceDisabledWithoutToken(t *testing.T) {
	svc, err := NewService(&config.Config{})
	require.NoError(t, err)
	require.NotNil(t, svc)

	assert.False(t, svc.Enabled())
}

func TestServiceEnabledWithToken(t *testing.T) {
	svc, err := NewService(&config.Config{MercadoPagoToken: "TEST-1234"})
	require.NoError(t, err)

	assert.True(t, svc.Enabled())
}

func TestMethodIDFor(t *testing.T) {
	cases := []struct {
		stored string
		want   string
	}{
		{"PIX", "pix"},
		{"BOLETO", "bolbradesco"},
		{"CREDIT_CARD", ""},
		{"DEBIT_CARD", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, methodIDFor(tc.stored), "stored type %q", tc.stored)
	}
}

func TestCreateForOrderSkipsCardPayments(t *testing.T) {
	// Card payments need a storefront token, so no provider call is
	// made and a zero service is safe here.
	svc := &Service{}

	resp, err := svc.CreateForOrder(context.Background(), &models.Order{
		PaymentMethodType: "CREDIT_CARD",
	})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestOrderIDFromReference(t *testing.T) {
	id, err := OrderIDFromReference("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = OrderIDFromReference("")
	assert.Error(t, err)

	_, err = OrderIDFromReference("order-42")
	assert.Error(t, err)

	_, err = OrderIDFromReference("-1")
	assert.Error(t, err)
}
