package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gamevault/internal/models"
	"gamevault/internal/service"
)

type gameRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Developer   string   `json:"developer" binding:"required"`
	Release     int      `json:"release"`
	Price       float64  `json:"price"`
	Cover       string   `json:"cover" binding:"required"`
	Video       string   `json:"video"`
	GenreIDs    []string `json:"genreIds"`
}

type gameResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Developer   string    `json:"developer"`
	Release     int       `json:"release"`
	Price       float64   `json:"price"`
	Cover       string    `json:"cover"`
	Video       string    `json:"video,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	GenreIDs    []string  `json:"genreIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toGameResponse(game models.Game) gameResponse {
	return gameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		Developer:   game.Developer,
		Release:     game.Release,
		Price:       game.Price,
		Cover:       game.CoverURL,
		Video:       game.VideoURL,
		Rating:      game.Rating,
		GenreIDs:    game.GenreIDs,
		CreatedAt:   game.CreatedAt,
	}
}

func (r gameRequest) toInput() service.GameInput {
	return service.GameInput{
		Title:       r.Title,
		Description: r.Description,
		Developer:   r.Developer,
		Release:     r.Release,
		Price:       r.Price,
		CoverURL:    r.Cover,
		VideoURL:    r.Video,
		GenreIDs:    r.GenreIDs,
	}
}

func (h HandlerSet) ListGames(c *gin.Context) {
	games, err := h.catalog.ListGames(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]gameResponse, 0, len(games))
	for _, game := range games {
		resp = append(resp, toGameResponse(game))
	}
	c.JSON(http.StatusOK, gin.H{"games": resp})
}

func (h HandlerSet) GetGame(c *gin.Context) {
	game, err := h.catalog.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": toGameResponse(game)})
}

func (h HandlerSet) CreateGame(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.catalog.CreateGame(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"game": toGameResponse(game)})
}

func (h HandlerSet) UpdateGame(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.catalog.UpdateGame(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": toGameResponse(game)})
}

func (h HandlerSet) DeleteGame(c *gin.Context) {
	if err := h.catalog.DeleteGame(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
