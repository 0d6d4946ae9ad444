package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gamevault/internal/models"
	"gamevault/internal/service"
)

type genreRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type genreResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toGenreResponse(genre models.Genre) genreResponse {
	return genreResponse{
		ID:          genre.ID,
		Title:       genre.Title,
		Description: genre.Description,
		CreatedAt:   genre.CreatedAt,
	}
}

func (h HandlerSet) ListGenres(c *gin.Context) {
	genres, err := h.catalog.ListGenres(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]genreResponse, 0, len(genres))
	for _, genre := range genres {
		resp = append(resp, toGenreResponse(genre))
	}
	c.JSON(http.StatusOK, gin.H{"genres": resp})
}

func (h HandlerSet) CreateGenre(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genre, err := h.catalog.CreateGenre(c.Request.Context(), service.GenreInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"genre": toGenreResponse(genre)})
}

func (h HandlerSet) UpdateGenre(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genre, err := h.catalog.UpdateGenre(c.Request.Context(), c.Param("id"), service.GenreInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"genre": toGenreResponse(genre)})
}

func (h HandlerSet) DeleteGenre(c *gin.Context) {
	if err := h.catalog.DeleteGenre(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
