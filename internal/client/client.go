// Package client is the Go SDK for the gamevault API. Every call
// attaches the session token from the store and dispatches its result
// back into it, so the cached state always reflects the responses in
// the order the client processed them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"gamevault/internal/client/store"
	"gamevault/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
	store   *store.Store
	log     zerolog.Logger
}

func New(baseURL string, st *store.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   st,
		log:     log,
	}
}

// Store exposes the session store backing this client.
func (c *Client) Store() *store.Store {
	return c.store
}

// APIError is a non-2xx response, carrying the server's error message
// when one was sent.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: %s (status %d)", e.Message, e.Status)
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.store.State().Auth.Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Wire DTOs mirroring the server's response shapes.

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Bio       string    `json:"bio"`
	AvatarURL *string   `json:"avatarUrl"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d userDTO) toModel() models.User {
	return models.User{
		ID:        d.ID,
		Email:     d.Email,
		Username:  d.Username,
		Name:      d.Name,
		Surname:   d.Surname,
		Bio:       d.Bio,
		AvatarURL: d.AvatarURL,
		Role:      models.Role(d.Role),
		CreatedAt: d.CreatedAt,
	}
}

type gameDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Developer   string    `json:"developer"`
	Release     int       `json:"release"`
	Price       float64   `json:"price"`
	Cover       string    `json:"cover"`
	Video       string    `json:"video"`
	Rating      *float64  `json:"rating"`
	GenreIDs    []string  `json:"genreIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (d gameDTO) toModel() models.Game {
	return models.Game{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Developer:   d.Developer,
		Release:     d.Release,
		Price:       d.Price,
		CoverURL:    d.Cover,
		VideoURL:    d.Video,
		Rating:      d.Rating,
		GenreIDs:    d.GenreIDs,
		CreatedAt:   d.CreatedAt,
	}
}

type genreDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (d genreDTO) toModel() models.Genre {
	return models.Genre{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

type reviewDTO struct {
	ID        string    `json:"id"`
	GameID    string    `json:"gameId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d reviewDTO) toModel() models.Review {
	return models.Review{
		ID:        d.ID,
		GameID:    d.GameID,
		UserID:    d.UserID,
		Rating:    d.Rating,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
	}
}
