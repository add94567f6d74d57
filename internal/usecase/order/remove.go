package order

import (
	"context"

	"github.com/staterastore/statera-api/internal/audit"
	domain "github.com/staterastore/statera-api/internal/domain/order"
	"github.com/staterastore/statera-api/internal/models"
)

type RemoveOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveOrder {
	return &RemoveOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveOrder) Execute(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	o, err := uc.repo.Remove(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClientID: &o.ClientID,
		Action:   "order_deleted",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return o, nil
}
