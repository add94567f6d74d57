package order

import (
	"context"

	"github.com/staterastore/statera-api/internal/audit"
	domain "github.com/staterastore/statera-api/internal/domain/order"
	"github.com/staterastore/statera-api/internal/httperr"
	"github.com/staterastore/statera-api/internal/models"
)

// ======================================================
// UPDATE ORDER (status / total patch)
// ======================================================

type UpdateOrderInput struct {
	Status *string
	Total  *float64
}

type UpdateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateOrder {
	return &UpdateOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateOrder) Execute(
	ctx context.Context,
	id uint,
	in UpdateOrderInput,
) (*models.Order, error) {

	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	action := "order_updated"

	if in.Status != nil {
		next, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if err := domain.CanTransition(domain.Status(o.Status), next); err != nil {
			return nil, err
		}
		o.Status = string(next)
		action = "order_status_changed"
	}

	if in.Total != nil {
		if *in.Total < 0 {
			return nil, httperr.ErrValidation("invalid_total", "Order total cannot be negative.")
		}
		o.Total = *in.Total
	}

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClientID: &o.ClientID,
		Action:   action,
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]string{"status": o.Status},
	})

	return o, nil
}
