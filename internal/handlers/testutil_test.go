package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/staterastore/statera-api/internal/audit"
	"github.com/staterastore/statera-api/internal/config"
	infraRepo "github.com/staterastore/statera-api/internal/infra/repository"
	"github.com/staterastore/statera-api/internal/middleware"
	"github.com/staterastore/statera-api/internal/models"
	"github.com/staterastore/statera-api/internal/payment"
	ucorder "github.com/staterastore/statera-api/internal/usecase/order"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
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

// testAPI wires the auth, user and order surface against an in-memory
// database, mirroring the production route layout.
func testAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db := testDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}

	orderRepo := infraRepo.NewOrderGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	payments, err := payment.NewService(cfg)
	require.NoError(t, err)

	authHandler := NewAuthHandler(db, cfg)
	userHandler := NewUserHandler(db, cfg)
	productHandler := NewProductHandler(db, nil)
	orderHandler := NewOrderHandler(
		ucorder.NewCreateOrder(orderRepo, dispatcher),
		ucorder.NewListOrders(orderRepo),
		ucorder.NewGetOrder(orderRepo),
		ucorder.NewUpdateOrder(orderRepo, dispatcher),
		ucorder.NewRemoveOrder(orderRepo, dispatcher),
		payments,
	)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/users", userHandler.Create)

		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/products", productHandler.Create)

			secured.POST("/orders", orderHandler.Create)
			secured.GET("/orders", orderHandler.List)
			secured.GET("/orders/:id", orderHandler.Get)
			secured.PATCH("/orders/:id", orderHandler.Update)
			secured.DELETE("/orders/:id", orderHandler.Delete)
			secured.GET("/admin/orders", orderHandler.ListAll)
		}
	}

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerAndLogin(t *testing.T, r *gin.Engine, name, email, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/users", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
