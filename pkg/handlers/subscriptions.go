package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"streamly-backend/pkg/middleware"
	"streamly-backend/pkg/store"
)

// SubscriptionHandler toggles the premium flag on the caller's own account.
// There is no payment verification here; reconciliation with the payment
// provider is the webhook's job.
type SubscriptionHandler struct {
	users store.UserStore
	log   *slog.Logger
}

func NewSubscriptionHandler(users store.UserStore, log *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{users: users, log: log}
}

func (h *SubscriptionHandler) BecomePremium(c *gin.Context) {
	h.setPremium(c, true)
}

func (h *SubscriptionHandler) RevokePremium(c *gin.Context) {
	h.setPremium(c, false)
}

func (h *SubscriptionHandler) setPremium(c *gin.Context, premium bool) {
	user := middleware.CurrentUser(c)
	if err := h.users.SetPremium(user.ID, premium); err != nil {
		h.log.Error("set premium", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "is_premium": premium})
}
