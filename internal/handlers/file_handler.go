package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Lixetron/job-portal/internal/logger"
	"github.com/Lixetron/job-portal/internal/storage"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

// FileHandler serves previously uploaded files back under /host.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/resume/:file", h.serve("resume"))
	r.GET("/profile/:file", h.serve("profile"))
}

func (h *FileHandler) serve(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Base strips any path traversal from the client-supplied name.
		name := filepath.Base(c.Param("file"))
		path := filepath.Join(kind, name)

		ctx := c.Request.Context()
		exists, err := h.store.Exists(ctx, path)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		if !exists {
			apperrors.HandleError(c, apperrors.ErrNotFound(nil))
			return
		}

		reader, err := h.store.Get(ctx, path)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		defer reader.Close()

		contentType := mime.TypeByExtension(filepath.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Type", contentType)
		c.Status(http.StatusOK)

		if _, err := io.Copy(c.Writer, reader); err != nil {
			// Headers are already sent; the broken stream can only be logged.
			logger.CtxWarn(ctx, "file stream interrupted", "path", path, "error", err.Error())
		}
	}
}
