package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"streamly-backend/pkg/recommend"
	"streamly-backend/pkg/store"
)

type RecommendHandler struct {
	videos store.VideoStore
	log    *slog.Logger
}

func NewRecommendHandler(videos store.VideoStore, log *slog.Logger) *RecommendHandler {
	return &RecommendHandler{videos: videos, log: log}
}

// ForVideo recommends same-category videos first, then the rest. When the
// target id is unknown it falls back to the newest videos.
func (h *RecommendHandler) ForVideo(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	limit := intQuery(c, "limit", 6)

	all, err := h.videos.All()
	if err != nil {
		h.log.Error("load videos", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading videos"})
		return
	}

	result, found := recommend.ForVideo(all, id, limit)
	if !found {
		result, err = h.videos.List(0, limit)
		if err != nil {
			h.log.Error("load fallback videos", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading videos"})
			return
		}
	}
	c.JSON(http.StatusOK, result)
}
