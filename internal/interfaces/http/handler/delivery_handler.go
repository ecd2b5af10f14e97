package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/rahulupadhyay22/Restaurant-Pos/internal/application/delivery"
	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/order"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// DeliveryHandler exposes the operator actions on delivery orders.
type DeliveryHandler struct {
	lifecycle *app.LifecycleService
	log       logger.Logger
}

func NewDeliveryHandler(lifecycle *app.LifecycleService, log logger.Logger) *DeliveryHandler {
	return &DeliveryHandler{lifecycle: lifecycle, log: log}
}

func (h *DeliveryHandler) Accept(c *gin.Context) {
	d, o, err := h.lifecycle.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"delivery_order": deliveryOrderView(d),
		"order":          orderView(o),
	})
}

func (h *DeliveryHandler) Reject(c *gin.Context) {
	h.transition(c, h.lifecycle.Reject)
}

func (h *DeliveryHandler) Prepare(c *gin.Context) {
	h.transition(c, h.lifecycle.Prepare)
}

func (h *DeliveryHandler) Ready(c *gin.Context) {
	h.transition(c, h.lifecycle.Ready)
}

func (h *DeliveryHandler) Complete(c *gin.Context) {
	h.transition(c, h.lifecycle.Complete)
}

func (h *DeliveryHandler) transition(c *gin.Context, op func(ctx context.Context, id string) (*domain.DeliveryOrder, error)) {
	d, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"delivery_order": deliveryOrderView(d),
	})
}

func (h *DeliveryHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.lifecycle.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"delivery_order": deliveryOrderView(d),
	})
}

func (h *DeliveryHandler) Get(c *gin.Context) {
	d, err := h.lifecycle.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery_order": deliveryOrderView(d)})
}

func (h *DeliveryHandler) ListPending(c *gin.Context) {
	orders, err := h.lifecycle.ListPending(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery_orders": deliveryOrderViews(orders)})
}

func (h *DeliveryHandler) ListCompleted(c *gin.Context) {
	orders, err := h.lifecycle.ListCompleted(c.Request.Context(), 50)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery_orders": deliveryOrderViews(orders)})
}

func (h *DeliveryHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery order not found"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
	default:
		h.log.Error("operator action failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update delivery order",
			"error":   "internal error",
		})
	}
}

func deliveryOrderView(d *domain.DeliveryOrder) gin.H {
	items, err := d.Items()
	if err != nil {
		items = nil
	}
	return gin.H{
		"id":                d.ID,
		"platform":          d.Platform.String(),
		"platform_order_id": d.PlatformOrderID,
		"order_id":          d.OrderID,
		"status":            d.Status.String(),
		"customer_name":     d.CustomerName,
		"customer_phone":    d.CustomerPhone,
		"customer_address":  d.CustomerAddress,
		"delivery_fee":      d.DeliveryFee,
		"platform_fee":      d.PlatformFee,
		"items":             items,
		"created_at":        d.CreatedAt,
		"updated_at":        d.UpdatedAt,
	}
}

func deliveryOrderViews(orders []domain.DeliveryOrder) []gin.H {
	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		out = append(out, deliveryOrderView(&orders[i]))
	}
	return out
}

func orderView(o *order.Order) gin.H {
	if o == nil {
		return nil
	}
	items := make([]gin.H, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, gin.H{
			"id":           item.ID,
			"menu_item_id": item.MenuItemID,
			"quantity":     item.Quantity,
			"price":        item.Price,
			"notes":        item.Notes,
		})
	}
	return gin.H{
		"id":           o.ID,
		"type":         string(o.Type),
		"status":       string(o.Status),
		"total_amount": o.TotalAmount(),
		"items":        items,
	}
}
