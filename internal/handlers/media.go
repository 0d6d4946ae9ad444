package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamevault/internal/middleware"
	"gamevault/internal/service"
)

type uploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	MIME string `json:"mime"`
	Size int64  `json:"sizeBytes"`
}

// UploadMedia stores a cover or avatar image and returns the URL to
// put into the matching game or profile field.
func (h HandlerSet) UploadMedia(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if h.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage_unavailable"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_required"})
		return
	}
	defer file.Close()

	kind := service.UploadKind(c.PostForm("kind"))
	if kind == "" {
		kind = service.UploadKindCover
	}

	result, err := h.uploads.Upload(c.Request.Context(), service.UploadInput{
		UserID: claims.UserID,
		Kind:   kind,
		File:   file,
		Header: header,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"upload": uploadResponse{
		Key:  result.Key,
		URL:  result.URL,
		MIME: result.MIME,
		Size: result.Size,
	}})
}
