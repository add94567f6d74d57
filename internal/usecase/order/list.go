package order

import (
	"context"

	domain "github.com/staterastore/statera-api/internal/domain/order"
	"github.com/staterastore/statera-api/internal/models"
)

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

// ExecuteForClient lists the caller's own orders, newest first.
func (uc *ListOrders) ExecuteForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Order, error) {
	return uc.repo.FindAllForClient(ctx, clientID)
}

// ExecuteAll is the unscoped admin listing.
func (uc *ListOrders) ExecuteAll(
	ctx context.Context,
) ([]models.Order, error) {
	return uc.repo.FindAll(ctx)
}
