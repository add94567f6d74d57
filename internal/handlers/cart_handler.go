package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/staterastore/statera-api/internal/cart"
	"github.com/staterastore/statera-api/internal/httperr"
)

const cartSessionHeader = "X-Cart-Session"

type CartHandler struct {
	store *cart.Store
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

// --------- Requests ---------

type AddCartItemRequest struct {
	ProductID uint    `json:"productId" binding:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// --------- Handlers ---------

// session returns the cart session id, minting one on first contact.
// The id is always echoed back so the storefront can persist it.
func (h *CartHandler) session(c *gin.Context) string {
	id := c.GetHeader(cartSessionHeader)
	if id == "" {
		id = cart.NewSessionID()
	}
	c.Header(cartSessionHeader, id)
	return id
}

func (h *CartHandler) Get(c *gin.Context) {
	sessionID := h.session(c)

	ct, err := h.store.Get(c.Request.Context(), sessionID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_cart", "Unexpected error.")
		return
	}

	c.JSON(http.StatusOK, ct)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := h.session(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ct, err := h.store.AddItem(c.Request.Context(), sessionID, cart.Item{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, ct)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID := h.session(c)

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Product id must be numeric.")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ct, err := h.store.UpdateQuantity(c.Request.Context(), sessionID, uint(productID), req.Quantity)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, ct)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := h.session(c)

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Product id must be numeric.")
		return
	}

	ct, err := h.store.RemoveItem(c.Request.Context(), sessionID, uint(productID))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, ct)
}

func (h *CartHandler) Clear(c *gin.Context) {
	sessionID := h.session(c)

	ct, err := h.store.Clear(c.Request.Context(), sessionID)
	if err != nil {
		httperr.Internal(c, "failed_to_clear_cart", "Unexpected error.")
		return
	}

	c.JSON(http.StatusOK, ct)
}
