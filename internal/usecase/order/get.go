package order

import (
	"context"

	domain "github.com/staterastore/statera-api/internal/domain/order"
	"github.com/staterastore/statera-api/internal/models"
)

type GetOrder struct {
	repo domain.Repository
}

func NewGetOrder(repo domain.Repository) *GetOrder {
	return &GetOrder{repo: repo}
}

// Execute fetches one of the caller's orders. Someone else's order is
// indistinguishable from a nonexistent one.
func (uc *GetOrder) Execute(
	ctx context.Context,
	id uint,
	clientID uint,
) (*models.Order, error) {
	return uc.repo.FindByIDForClient(ctx, id, clientID)
}
