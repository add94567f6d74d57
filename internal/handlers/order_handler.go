package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	domain "github.com/staterastore/statera-api/internal/domain/order"
	"github.com/staterastore/statera-api/internal/dto"
	"github.com/staterastore/statera-api/internal/httperr"
	"github.com/staterastore/statera-api/internal/httpresp"
	"github.com/staterastore/statera-api/internal/middleware"
	"github.com/staterastore/statera-api/internal/models"
	ucorder "github.com/staterastore/statera-api/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

// PaymentCreator opens provider payments for freshly placed orders.
type PaymentCreator interface {
	Enabled() bool
	CreateForOrder(ctx context.Context, o *models.Order) (*mppayment.Response, error)
}

type OrderHandler struct {
	createUC *ucorder.CreateOrder
	listUC   *ucorder.ListOrders
	getUC    *ucorder.GetOrder
	updateUC *ucorder.UpdateOrder
	removeUC *ucorder.RemoveOrder

	payments PaymentCreator
}

func NewOrderHandler(
	createUC *ucorder.CreateOrder,
	listUC *ucorder.ListOrders,
	getUC *ucorder.GetOrder,
	updateUC *ucorder.UpdateOrder,
	removeUC *ucorder.RemoveOrder,
	payments PaymentCreator,
) *OrderHandler {
	return &OrderHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		removeUC: removeUC,
		payments: payments,
	}
}

// --------- Requests ---------

type UpdateOrderRequest struct {
	Status *string  `json:"status,omitempty"`
	Total  *float64 `json:"total,omitempty"`
}

// --------- Handlers ---------

func (h *OrderHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var req domain.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	o, err := h.createUC.Execute(c.Request.Context(), clientID, req)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	// Offline payment methods get a provider payment straight away.
	// Failures here never fail the order: the storefront can retry the
	// payment, and the webhook advances the status once it clears.
	if h.payments.Enabled() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if _, err := h.payments.CreateForOrder(ctx, o); err != nil {
				log.Printf("payment create for order %d: %v", o.ID, err)
			}
		}()
	}

	c.JSON(http.StatusCreated, dto.OrderResponseFrom(o))
}

func (h *OrderHandler) List(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	orders, err := h.listUC.ExecuteForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.OrderResponsesFrom(orders))
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.listUC.ExecuteAll(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, dto.OrderResponsesFrom(orders))
}

func (h *OrderHandler) Get(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	id, err := parseOrderID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Order id must be numeric.")
		return
	}

	o, err := h.getUC.Execute(c.Request.Context(), id, clientID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.OrderResponseFrom(o))
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := parseOrderID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Order id must be numeric.")
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	o, err := h.updateUC.Execute(c.Request.Context(), id, ucorder.UpdateOrderInput{
		Status: req.Status,
		Total:  req.Total,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderResponseFrom(o))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseOrderID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Order id must be numeric.")
		return
	}

	if _, err := h.removeUC.Execute(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseOrderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
