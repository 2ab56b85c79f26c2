package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"streamly-backend/pkg/middleware"
	"streamly-backend/pkg/models"
	"streamly-backend/pkg/store"
)

type VideoHandler struct {
	videos store.VideoStore
	log    *slog.Logger
}

func NewVideoHandler(videos store.VideoStore, log *slog.Logger) *VideoHandler {
	return &VideoHandler{videos: videos, log: log}
}

type videoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
}

func (h *VideoHandler) List(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 50)

	videos, err := h.videos.List(skip, limit)
	if err != nil {
		h.log.Error("list videos", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) Create(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Category == "" {
		req.Category = "Other"
	}
	if req.Duration == "" {
		req.Duration = "0:00"
	}

	owner := middleware.CurrentUser(c)
	video := &models.Video{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
		OwnerID:     &owner.ID,
	}
	if err := h.videos.Create(video); err != nil {
		h.log.Error("create video", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating video"})
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	video, err := h.videos.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		h.log.Error("get video", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching video"})
		return
	}
	c.JSON(http.StatusOK, video)
}
