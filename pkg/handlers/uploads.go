package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"streamly-backend/pkg/middleware"
	"streamly-backend/pkg/models"
	"streamly-backend/pkg/s3"
	"streamly-backend/pkg/store"
)

// UploadSigner is the slice of pkg/s3 the upload routes need.
type UploadSigner interface {
	PresignedPutURL(key, contentType string) (string, error)
	PublicURL(key string) string
}

type UploadHandler struct {
	videos store.VideoStore
	signer UploadSigner
	log    *slog.Logger
}

func NewUploadHandler(videos store.VideoStore, signer UploadSigner, log *slog.Logger) *UploadHandler {
	return &UploadHandler{videos: videos, signer: signer, log: log}
}

type presignRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// Presign hands the caller a direct-to-S3 write URL. Nothing is recorded
// server-side until the client reports completion.
func (h *UploadHandler) Presign(c *gin.Context) {
	var req presignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := middleware.CurrentUser(c)
	key := s3.ObjectKey(user.ID, req.Filename, time.Now())

	url, err := h.signer.PresignedPutURL(key, req.ContentType)
	if err != nil {
		h.log.Error("presign upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating upload URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"upload_url": url, "s3_key": key})
}

type completeRequest struct {
	S3Key       string `json:"s3_key" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ThumbKey    string `json:"thumb_key"`
}

// Complete records video metadata after the client finished its direct
// upload. The caller's claim that the object exists is trusted; there is no
// existence check against the store.
func (h *UploadHandler) Complete(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Category == "" {
		req.Category = "Other"
	}

	user := middleware.CurrentUser(c)
	video := &models.Video{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Duration:    "0:00",
		S3Key:       req.S3Key,
		ThumbKey:    req.ThumbKey,
		OwnerID:     &user.ID,
	}
	if err := h.videos.Create(video); err != nil {
		h.log.Error("complete upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"video_id": video.ID, "public_url": h.signer.PublicURL(req.S3Key)})
}
