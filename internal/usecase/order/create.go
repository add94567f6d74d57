package order

import (
	"context"

	"github.com/staterastore/statera-api/internal/audit"
	domain "github.com/staterastore/statera-api/internal/domain/order"
	"github.com/staterastore/statera-api/internal/models"
)

// ======================================================
// CREATE ORDER
// ======================================================

type CreateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:  repo,
		audit: audit,
	}
}

// Execute normalizes the request, persists order plus items atomically
// and reports the created order with items and client attached. The
// clientID always comes from the auth gate, never from the payload.
func (uc *CreateOrder) Execute(
	ctx context.Context,
	clientID uint,
	in domain.CreateOrderInput,
) (*models.Order, error) {

	canonical, err := domain.Normalize(in)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(canonical.Items))
	for _, it := range canonical.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	o := &models.Order{
		ClientID: clientID,
		Total:    canonical.Total,
		Status:   string(domain.InitialStatus()),

		ShippingFirstName: canonical.ShippingFirstName,
		ShippingLastName:  canonical.ShippingLastName,
		ShippingAddress1:  canonical.ShippingAddress1,
		ShippingAddress2:  canonical.ShippingAddress2,
		ShippingCity:      canonical.ShippingCity,
		ShippingState:     canonical.ShippingState,
		ShippingZip:       canonical.ShippingZip,
		ShippingCountry:   canonical.ShippingCountry,

		PaymentMethodType: canonical.PaymentMethodType,
		PaymentLastDigits: canonical.PaymentLastDigits,

		Items: items,
	}

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClientID: &clientID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return o, nil
}
