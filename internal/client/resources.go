package client

import (
	"context"
	"net/http"

	"gamevault/internal/client/store"
	"gamevault/internal/models"
)

type GameInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Developer   string   `json:"developer"`
	Release     int      `json:"release,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Cover       string   `json:"cover"`
	Video       string   `json:"video,omitempty"`
	GenreIDs    []string `json:"genreIds,omitempty"`
}

func (c *Client) FetchGames(ctx context.Context) error {
	var resp struct {
		Games []gameDTO `json:"games"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/games", nil, &resp); err != nil {
		return err
	}

	games := make([]models.Game, 0, len(resp.Games))
	for _, dto := range resp.Games {
		games = append(games, dto.toModel())
	}
	c.store.Dispatch(store.SetGames{Games: games})
	return nil
}

func (c *Client) CreateGame(ctx context.Context, input GameInput) (models.Game, error) {
	var resp struct {
		Game gameDTO `json:"game"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/games", input, &resp); err != nil {
		return models.Game{}, err
	}

	game := resp.Game.toModel()
	c.store.Dispatch(store.AddGame{Game: game})
	return game, nil
}

func (c *Client) UpdateGame(ctx context.Context, id string, input GameInput) (models.Game, error) {
	var resp struct {
		Game gameDTO `json:"game"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/games/"+id, input, &resp); err != nil {
		return models.Game{}, err
	}

	game := resp.Game.toModel()
	c.store.Dispatch(store.UpdateGame{Game: game})
	return game, nil
}

func (c *Client) DeleteGame(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/games/"+id, nil, nil); err != nil {
		return err
	}
	c.store.Dispatch(store.DeleteGame{ID: id})
	return nil
}

type GenreInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (c *Client) FetchGenres(ctx context.Context) error {
	var resp struct {
		Genres []genreDTO `json:"genres"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/genres", nil, &resp); err != nil {
		return err
	}

	genres := make([]models.Genre, 0, len(resp.Genres))
	for _, dto := range resp.Genres {
		genres = append(genres, dto.toModel())
	}
	c.store.Dispatch(store.SetGenres{Genres: genres})
	return nil
}

func (c *Client) CreateGenre(ctx context.Context, input GenreInput) (models.Genre, error) {
	var resp struct {
		Genre genreDTO `json:"genre"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/genres", input, &resp); err != nil {
		return models.Genre{}, err
	}

	genre := resp.Genre.toModel()
	c.store.Dispatch(store.AddGenre{Genre: genre})
	return genre, nil
}

func (c *Client) UpdateGenre(ctx context.Context, id string, input GenreInput) (models.Genre, error) {
	var resp struct {
		Genre genreDTO `json:"genre"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/genres/"+id, input, &resp); err != nil {
		return models.Genre{}, err
	}

	genre := resp.Genre.toModel()
	c.store.Dispatch(store.UpdateGenre{Genre: genre})
	return genre, nil
}

func (c *Client) DeleteGenre(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/genres/"+id, nil, nil); err != nil {
		return err
	}
	c.store.Dispatch(store.DeleteGenre{ID: id})
	return nil
}

func (c *Client) FetchUsers(ctx context.Context) error {
	var resp struct {
		Users []userDTO `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/users", nil, &resp); err != nil {
		return err
	}

	users := make([]models.User, 0, len(resp.Users))
	for _, dto := range resp.Users {
		users = append(users, dto.toModel())
	}
	c.store.Dispatch(store.SetUsers{Users: users})
	return nil
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

func (c *Client) FetchReviews(ctx context.Context, gameID string) error {
	var resp struct {
		Reviews []reviewDTO `json:"reviews"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/games/"+gameID+"/reviews", nil, &resp); err != nil {
		return err
	}

	reviews := make([]models.Review, 0, len(resp.Reviews))
	for _, dto := range resp.Reviews {
		reviews = append(reviews, dto.toModel())
	}
	c.store.Dispatch(store.SetReviews{GameID: gameID, Reviews: reviews})
	return nil
}

func (c *Client) CreateReview(ctx context.Context, gameID string, input ReviewInput) (models.Review, error) {
	var resp struct {
		Review reviewDTO `json:"review"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/games/"+gameID+"/reviews", input, &resp); err != nil {
		return models.Review{}, err
	}

	review := resp.Review.toModel()
	c.store.Dispatch(store.AddReview{GameID: gameID, Review: review})
	return review, nil
}

func (c *Client) UpdateReview(ctx context.Context, gameID string, reviewID string, input ReviewInput) (models.Review, error) {
	var resp struct {
		Review reviewDTO `json:"review"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/reviews/"+reviewID, input, &resp); err != nil {
		return models.Review{}, err
	}

	review := resp.Review.toModel()
	c.store.Dispatch(store.UpdateReview{GameID: gameID, Review: review})
	return review, nil
}

// DeleteReview removes a review. The cache is only touched after the
// server accepted the delete: a Forbidden response leaves the cached
// list exactly as it was.
func (c *Client) DeleteReview(ctx context.Context, gameID string, reviewID string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/reviews/"+reviewID, nil, nil); err != nil {
		return err
	}
	c.store.Dispatch(store.DeleteReview{GameID: gameID, ReviewID: reviewID})
	return nil
}
