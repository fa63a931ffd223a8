package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Lixetron/job-portal/internal/middleware"
	"github.com/Lixetron/job-portal/internal/storage"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

type UploadHandler struct {
	*BaseHandler
	store       storage.Storage
	maxFileSize int64
}

func NewUploadHandler(base *BaseHandler, store storage.Storage, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		BaseHandler: base,
		store:       store,
		maxFileSize: maxFileSize,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	upload := r.Group("/upload")
	upload.Use(middleware.AuthMiddleware())
	{
		upload.POST("/resume", h.UploadResume)
		upload.POST("/profile", h.UploadProfileImage)
	}
}

func (h *UploadHandler) UploadResume(c *gin.Context) {
	h.upload(c, "resume", map[string]bool{".pdf": true})
}

func (h *UploadHandler) UploadProfileImage(c *gin.Context) {
	h.upload(c, "profile", map[string]bool{".jpg": true, ".png": true})
}

// upload stores the file under a generated name so client filenames never
// reach the filesystem.
func (h *UploadHandler) upload(c *gin.Context, kind string, allowedExts map[string]bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File is required"))
		return
	}

	if fileHeader.Size > h.maxFileSize {
		apperrors.HandleError(c, apperrors.ErrFileTooLarge)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExts[ext] {
		apperrors.HandleError(c, apperrors.ErrInvalidFileType)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	path := filepath.Join(kind, uuid.NewString()+ext)
	if err := h.store.Save(c.Request.Context(), path, file, fileHeader.Header.Get("Content-Type")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	url, err := h.store.GetURL(c.Request.Context(), path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"url":     url,
	})
}
