package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrebkr/vendcare/internal/http/middleware"
	"github.com/emrebkr/vendcare/internal/photo"
)

// compressPhotos accepts one or more uploaded images under the "photos"
// field and returns the compressed data URIs in upload order. A failure on
// any file fails the whole batch.
func (h *Handler) compressPhotos(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one photo is required"})
		return
	}

	readers := make([]io.Reader, 0, len(files))
	closers := make([]io.Closer, 0, len(files))
	defer func() {
		for _, closer := range closers {
			_ = closer.Close()
		}
	}()
	for _, file := range files {
		opened, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read " + file.Filename})
			return
		}
		closers = append(closers, opened)
		readers = append(readers, opened)
	}

	photos, err := photo.CompressAll(readers)
	if err != nil {
		switch {
		case errors.Is(err, photo.ErrDecode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is not a valid image"})
		case errors.Is(err, photo.ErrRead):
			c.JSON(http.StatusBadRequest, gin.H{"error": "file could not be read"})
		default:
			h.log.Error().Err(err).Msg("photo compression failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}
