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

type CommentHandler struct {
	comments store.CommentStore
	videos   store.VideoStore
	log      *slog.Logger
}

func NewCommentHandler(comments store.CommentStore, videos store.VideoStore, log *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, videos: videos, log: log}
}

type commentRequest struct {
	VideoID uint   `json:"video_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Create checks the video exists before inserting, so a dangling reference
// surfaces as a 404 rather than a constraint error.
func (h *CommentHandler) Create(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.videos.GetByID(req.VideoID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		h.log.Error("resolve video", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment"})
		return
	}

	author := middleware.CurrentUser(c)
	comment := &models.Comment{
		VideoID:  req.VideoID,
		AuthorID: &author.ID,
		Content:  req.Content,
	}
	if err := h.comments.Create(comment); err != nil {
		h.log.Error("create comment", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// ListForVideo returns the video's comments newest-first. An unknown video id
// yields an empty list, not an error.
func (h *CommentHandler) ListForVideo(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.ListForVideo(id)
	if err != nil {
		h.log.Error("list comments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}
