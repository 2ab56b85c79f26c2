package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76/webhook"
)

type WebhookHandler struct {
	webhookSecret string
	log           *slog.Logger
}

func NewWebhookHandler(webhookSecret string, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{webhookSecret: webhookSecret, log: log}
}

// Stripe receives payment-provider events. Without a configured secret the
// event is accepted unverified — a dev-only fallback. Verified events are
// acknowledged but not yet acted on.
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if h.webhookSecret == "" {
		c.JSON(http.StatusOK, gin.H{
			"received": true,
			"note":     "No webhook secret configured; ignoring signature verification",
		})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Webhook error: %v", err)})
		return
	}

	// TODO: map the Stripe customer to a user and update is_premium from
	// subscription events.
	h.log.Info("stripe event", "type", event.Type, "id", event.ID)
	c.JSON(http.StatusOK, gin.H{"received": true})
}
