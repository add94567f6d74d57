package order

import (
	"context"

	"github.com/staterastore/statera-api/internal/models"
)

type Repository interface {
	// -------- Create --------
	// Create persists the order and its items as one atomic unit.
	Create(
		ctx context.Context,
		o *models.Order,
	) error

	// -------- Read --------
	FindAll(
		ctx context.Context,
	) ([]models.Order, error)

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Order, error)

	// FindByIDForClient treats an order owned by someone else exactly
	// like a nonexistent one.
	FindByIDForClient(
		ctx context.Context,
		id uint,
		clientID uint,
	) (*models.Order, error)

	FindAllForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Order, error)

	// -------- Update / delete --------
	Update(
		ctx context.Context,
		o *models.Order,
	) error

	Remove(
		ctx context.Context,
		id uint,
	) (*models.Order, error)

	CountItems(
		ctx context.Context,
		orderID uint,
	) (int64, error)
}
