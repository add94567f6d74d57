package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/staterastore/statera-api/internal/models"
)

func seedCatalog(t *testing.T, db *gorm.DB) []models.Product {
	t.Helper()

	products := []models.Product{
		{Name: "Air Max 90", Description: "Classic running shoe", Price: 499.90, Stock: 10, Active: true, Category: "shoes"},
		{Name: "Court Vision", Description: "Leather court shoe", Price: 329.90, Stock: 5, Active: true, Category: "shoes"},
		{Name: "Clean Code", Description: "A handbook of agile craftsmanship", Price: 89.90, Stock: 3, Active: true, Category: "books"},
		{Name: "Discontinued Tee", Description: "Old stock", Price: 19.90, Stock: 0, Active: false, Category: "clothing"},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
	return products
}

func listProducts(t *testing.T, r *gin.Engine, path string) []models.Product {
	t.Helper()

	w := doJSON(t, r, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Product
	decode(t, w, &got)
	return got
}

func TestListProductsSkipsInactive(t *testing.T) {
	r, db := testAPI(t)
	seedCatalog(t, db)

	got := listProducts(t, r, "/api/products")

	require.Len(t, got, 3)
	for _, p := range got {
		assert.True(t, p.Active)
	}
	// id ascending
	assert.Equal(t, "Air Max 90", got[0].Name)
	assert.Equal(t, "Clean Code", got[2].Name)
}

func TestListProductsFiltersByCategory(t *testing.T) {
	r, db := testAPI(t)
	seedCatalog(t, db)

	got := listProducts(t, r, "/api/products?category=Shoes")

	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "shoes", p.Category)
	}

	assert.Empty(t, listProducts(t, r, "/api/products?category=garden"))
}

func TestListProductsSearchesNameAndDescription(t *testing.T) {
	r, db := testAPI(t)
	seedCatalog(t, db)

	byName := listProducts(t, r, "/api/products?query=AIR")
	require.Len(t, byName, 1)
	assert.Equal(t, "Air Max 90", byName[0].Name)

	byDescription := listProducts(t, r, "/api/products?query=craftsmanship")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Clean Code", byDescription[0].Name)

	assert.Empty(t, listProducts(t, r, "/api/products?query=snowboard"))
}

func TestGetProduct(t *testing.T) {
	r, db := testAPI(t)
	seeded := seedCatalog(t, db)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/products/%d", seeded[0].ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	decode(t, w, &got)
	assert.Equal(t, seeded[0].Name, got.Name)
	assert.Equal(t, seeded[0].Price, got.Price)

	w = doJSON(t, r, http.MethodGet, "/api/products/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProduct(t *testing.T) {
	r, _ := testAPI(t)
	token := registerAndLogin(t, r, "Vendedor", "vendedor@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/products", token, map[string]any{
		"name":        "Air Zoom",
		"description": "Lightweight trainer",
		"price":       599.90,
		"stock":       4,
		"category":    "Shoes",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Product
	decode(t, w, &got)
	assert.Equal(t, "Air Zoom", got.Name)
	assert.Equal(t, "shoes", got.Category)
	assert.True(t, got.Active)

	// created products are immediately listable
	assert.Len(t, listProducts(t, r, "/api/products"), 1)
}

func TestCreateProductRequiresAuth(t *testing.T) {
	r, _ := testAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/products", "", map[string]any{
		"name":  "Air Zoom",
		"price": 599.90,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProductValidation(t *testing.T) {
	r, _ := testAPI(t)
	token := registerAndLogin(t, r, "Vendedor", "vendedor@example.com", "secret123")

	cases := []map[string]any{
		{"price": 10.0},                      // no name
		{"name": "Free sample"},              // no price
		{"name": "Negative", "price": -5.0},  // price must be positive
		{"name": "X", "price": 5.0, "stock": -1},
	}

	for _, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/products", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
	}
}
