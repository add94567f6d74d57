package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/staterastore/statera-api/internal/httperr"
	"github.com/staterastore/statera-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
	))

	return db
}

func seedClient(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:         "Test Client",
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func newOrder(clientID uint) *models.Order {
	return &models.Order{
		ClientID: clientID,
		Total:    25.00,
		Status:   "pending",

		ShippingFirstName: "Maria",
		ShippingLastName:  "Silva",
		ShippingAddress1:  "Rua A, 100",
		ShippingCity:      "São Paulo",
		ShippingState:     "SP",
		ShippingZip:       "01000-000",
		ShippingCountry:   "BR",

		PaymentMethodType: "PIX",

		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 10.00},
			{ProductID: 2, Quantity: 1, Price: 5.00},
		},
	}
}

func TestCreatePersistsOrderWithItemsAndClient(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	client := seedClient(t, db, "maria@example.com")

	o := newOrder(client.ID)
	require.NoError(t, repo.Create(ctx, o))

	assert.NotZero(t, o.ID)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, client.Email, o.Client.Email)

	count, err := repo.CountItems(ctx, o.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestCreateFailsForUnknownClient(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	o := newOrder(999)
	err := repo.Create(ctx, o)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	// nothing half-written
	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	var items int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 12345)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestClientScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	alice := seedClient(t, db, "alice@example.com")
	bob := seedClient(t, db, "bob@example.com")

	o := newOrder(alice.ID)
	require.NoError(t, repo.Create(ctx, o))

	// owner sees it
	got, err := repo.FindByIDForClient(ctx, o.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	// someone else's order is indistinguishable from a missing one
	_, err = repo.FindByIDForClient(ctx, o.ID, bob.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	mine, err := repo.FindAllForClient(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestFindAllNewestFirstAndStable(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	client := seedClient(t, db, "maria@example.com")

	older := newOrder(client.ID)
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, older))

	newer := newOrder(client.ID)
	require.NoError(t, repo.Create(ctx, newer))

	first, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, newer.ID, first[0].ID)
	assert.Equal(t, older.ID, first[1].ID)

	// reading twice without mutation yields the same set
	second, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestUpdatePersistsPatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	client := seedClient(t, db, "maria@example.com")
	o := newOrder(client.ID)
	require.NoError(t, repo.Create(ctx, o))

	o.Status = "processing"
	o.Total = 30.00
	require.NoError(t, repo.Update(ctx, o))

	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "processing", got.Status)
	assert.Equal(t, 30.00, got.Total)
	assert.Len(t, got.Items, 2)
}

func TestRemoveDeletesItemsWithOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	client := seedClient(t, db, "maria@example.com")
	o := newOrder(client.ID)
	require.NoError(t, repo.Create(ctx, o))

	removed, err := repo.Remove(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, removed.ID)

	count, err := repo.CountItems(ctx, o.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.FindByID(ctx, o.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestRemoveNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	_, err := repo.Remove(ctx, 4242)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
