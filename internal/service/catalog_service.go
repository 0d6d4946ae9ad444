package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"gamevault/internal/ids"
	"gamevault/internal/models"
)

const (
	gamesCacheKey   = "catalog:games"
	genresCacheKey  = "catalog:genres"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogService owns games and genres. List reads go through redis;
// every mutation drops the affected key. The cache client may be nil
// (tests, degraded mode), in which case reads go straight to the store.
type CatalogService struct {
	games  GameStore
	genres GenreStore
	cache  *redis.Client
	log    zerolog.Logger
}

func NewCatalogService(games GameStore, genres GenreStore, cache *redis.Client, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		games:  games,
		genres: genres,
		cache:  cache,
		log:    log,
	}
}

type GameInput struct {
	Title       string
	Description string
	Developer   string
	Release     int
	Price       float64
	CoverURL    string
	VideoURL    string
	GenreIDs    []string
}

func (in GameInput) validate() error {
	if in.Title == "" || in.Description == "" || in.Developer == "" || in.CoverURL == "" {
		return validationError("title, description, developer and cover are required")
	}
	return nil
}

func (s *CatalogService) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if s.cacheGet(ctx, gamesCacheKey, &games) {
		return games, nil
	}

	games, err := s.games.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, gamesCacheKey, games)
	return games, nil
}

func (s *CatalogService) GetGame(ctx context.Context, id string) (models.Game, error) {
	return s.games.GetByID(ctx, id)
}

func (s *CatalogService) CreateGame(ctx context.Context, input GameInput) (models.Game, error) {
	if err := input.validate(); err != nil {
		return models.Game{}, err
	}

	game := models.Game{
		ID:          ids.New(),
		Title:       input.Title,
		Description: input.Description,
		Developer:   input.Developer,
		Release:     input.Release,
		Price:       input.Price,
		CoverURL:    input.CoverURL,
		VideoURL:    input.VideoURL,
		GenreIDs:    input.GenreIDs,
	}

	if err := s.games.Create(ctx, game); err != nil {
		return models.Game{}, err
	}
	s.invalidate(ctx, gamesCacheKey)
	return game, nil
}

func (s *CatalogService) UpdateGame(ctx context.Context, id string, input GameInput) (models.Game, error) {
	if err := input.validate(); err != nil {
		return models.Game{}, err
	}

	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		return models.Game{}, err
	}

	game.Title = input.Title
	game.Description = input.Description
	game.Developer = input.Developer
	game.Release = input.Release
	game.Price = input.Price
	game.CoverURL = input.CoverURL
	game.VideoURL = input.VideoURL
	game.GenreIDs = input.GenreIDs

	if err := s.games.Update(ctx, game); err != nil {
		return models.Game{}, err
	}
	s.invalidate(ctx, gamesCacheKey)
	return game, nil
}

func (s *CatalogService) DeleteGame(ctx context.Context, id string) error {
	if err := s.games.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, gamesCacheKey)
	return nil
}

type GenreInput struct {
	Title       string
	Description string
}

func (s *CatalogService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if s.cacheGet(ctx, genresCacheKey, &genres) {
		return genres, nil
	}

	genres, err := s.genres.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, genresCacheKey, genres)
	return genres, nil
}

func (s *CatalogService) CreateGenre(ctx context.Context, input GenreInput) (models.Genre, error) {
	if input.Title == "" {
		return models.Genre{}, validationError("title is required")
	}

	genre := models.Genre{
		ID:          ids.New(),
		Title:       input.Title,
		Description: input.Description,
	}

	if err := s.genres.Create(ctx, genre); err != nil {
		return models.Genre{}, err
	}
	s.invalidate(ctx, genresCacheKey)
	return genre, nil
}

func (s *CatalogService) UpdateGenre(ctx context.Context, id string, input GenreInput) (models.Genre, error) {
	if input.Title == "" {
		return models.Genre{}, validationError("title is required")
	}

	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return models.Genre{}, err
	}

	genre.Title = input.Title
	genre.Description = input.Description

	if err := s.genres.Update(ctx, genre); err != nil {
		return models.Genre{}, err
	}
	s.invalidate(ctx, genresCacheKey)
	return genre, nil
}

func (s *CatalogService) DeleteGenre(ctx context.Context, id string) error {
	if err := s.genres.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, genresCacheKey)
	return nil
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt cache entry")
		return false
	}
	return true
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, val any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, catalogCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (s *CatalogService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}
