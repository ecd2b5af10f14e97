package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/rahulupadhyay22/Restaurant-Pos/internal/application/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/config"
	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// signatureHeaders maps each platform to the header its webhooks sign with.
var signatureHeaders = map[domain.Platform]string{
	domain.PlatformZomato: "X-Zomato-Signature",
	domain.PlatformSwiggy: "X-Swiggy-Signature",
}

// RateLimiter bounds webhook requests per platform. A rejected request never
// reaches the store.
type RateLimiter interface {
	Allow(ctx context.Context, platform string) bool
}

// WebhookHandler is the inbound boundary for delivery platform webhooks.
type WebhookHandler struct {
	ingest   *app.IngestService
	verifier *app.SignatureVerifier
	limiter  RateLimiter
	delivery config.DeliveryConfig
	log      logger.Logger
}

func NewWebhookHandler(
	ingest *app.IngestService,
	verifier *app.SignatureVerifier,
	limiter RateLimiter,
	delivery config.DeliveryConfig,
	log logger.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		ingest:   ingest,
		verifier: verifier,
		limiter:  limiter,
		delivery: delivery,
		log:      log,
	}
}

// Receive handles POST /delivery/webhook/:platform.
func (h *WebhookHandler) Receive(c *gin.Context) {
	platform, err := domain.ParsePlatform(c.Param("platform"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown platform"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.Request.Context(), platform.String()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
		return
	}

	// The signature covers the raw bytes; read them before any JSON parsing.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable request body"})
		return
	}

	pCfg, _ := h.delivery.Platform(platform.String())
	signature := c.GetHeader(signatureHeaders[platform])
	if !h.verifier.Verify(body, signature, pCfg.WebhookSecret) {
		h.log.Warn("rejected webhook with invalid signature",
			logger.String("platform", platform.String()),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	result, err := h.ingest.Ingest(c.Request.Context(), platform, payload)
	if err != nil {
		var vErr *app.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
			return
		}
		h.log.Error("webhook processing failed",
			logger.String("platform", platform.String()),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to process order",
			"error":   "internal error",
		})
		return
	}

	message := "Order received"
	if result.Duplicate {
		message = "Order already received"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  message,
		"order_id": result.Order.PlatformOrderID,
	})
}
