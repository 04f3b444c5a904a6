package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salesboard/internal/store"
	"salesboard/internal/upload"
)

// Upload 上传 Excel 文件到某个分区
// POST /upload-excel?fileType=lubricants
func (h *Handler) Upload(c *gin.Context) {
	fileType := c.Query("fileType")
	if fileType == "" {
		fileType = c.PostForm("fileType")
	}
	if fileType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "fileType is required."})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form."})
		return
	}

	batch, err := h.uploads.Save(fileType, form.File["files"])
	switch {
	case err == nil:
	case errors.Is(err, upload.ErrInvalidPartition):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid fileType. Allowed: " + strings.Join(h.uploads.AllowedPartitions(), ", ")})
		return
	case errors.Is(err, upload.ErrNoFiles), errors.Is(err, upload.ErrTooManyFiles):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	default:
		h.logger.Error("upload failed", zap.String("fileType", fileType), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload files.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Files uploaded successfully!",
		"batch":   batch,
	})
}

// ListUploads 最近的上传记录
// GET /api/uploads?partition=lubricants&limit=50
func (h *Handler) ListUploads(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "upload log unavailable"})
		return
	}

	opts := store.UploadQueryOptions{Limit: 50}
	if p := c.Query("partition"); p != "" {
		opts.Partition = &p
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			h.respondError(c, &ValidationError{Field: "limit", Message: "must be a positive integer"})
			return
		}
		opts.Limit = n
	}

	items, err := h.store.ListUploads(opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
