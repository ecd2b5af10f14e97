package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulupadhyay22/Restaurant-Pos/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, webhook *handler.WebhookHandler, delivery *handler.DeliveryHandler) {
	r.POST("/delivery/webhook/:platform", webhook.Receive)

	api := r.Group("/api/delivery-orders")
	{
		api.GET("", delivery.ListPending)
		api.GET("/completed", delivery.ListCompleted)
		api.GET("/:id", delivery.Get)
		api.POST("/:id/accept", delivery.Accept)
		api.POST("/:id/reject", delivery.Reject)
		api.POST("/:id/prepare", delivery.Prepare)
		api.POST("/:id/ready", delivery.Ready)
		api.POST("/:id/complete", delivery.Complete)
		api.PUT("/:id/status", delivery.UpdateStatus)
	}
}
