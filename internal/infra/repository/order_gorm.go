package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/staterastore/statera-api/internal/domain/order"
	"github.com/staterastore/statera-api/internal/httperr"
	"github.com/staterastore/statera-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *OrderGormRepository) Create(
	ctx context.Context,
	o *models.Order,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	if err != nil {
		return httperr.FromStore(err, "client_not_found", "order_conflict")
	}

	return r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		First(o, o.ID).Error
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *OrderGormRepository) FindAll(
	ctx context.Context,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		First(&o, id).Error; err != nil {
		return nil, httperr.FromStore(err, "order_not_found", "order_conflict")
	}
	return &o, nil
}

func (r *OrderGormRepository) FindByIDForClient(
	ctx context.Context,
	id uint,
	clientID uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		Where("id = ? AND client_id = ?", id, clientID).
		First(&o).Error; err != nil {
		return nil, httperr.FromStore(err, "order_not_found", "order_conflict")
	}
	return &o, nil
}

func (r *OrderGormRepository) FindAllForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// --------------------------------------------------
// Update / delete
// --------------------------------------------------

func (r *OrderGormRepository) Update(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).
		Omit("Items", "Client").
		Save(o).Error
}

func (r *OrderGormRepository) Remove(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	o, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Items first: an order item must never outlive its order.
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}

func (r *OrderGormRepository) CountItems(
	ctx context.Context,
	orderID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count, err
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
