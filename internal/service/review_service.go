package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"gamevault/internal/ids"
	"gamevault/internal/models"
	"gamevault/internal/security"
)

// ReviewService enforces the ownership rule: only the review's author
// or an admin may change or remove it. Mutations enqueue a rating
// refresh task for the affected game.
type ReviewService struct {
	reviews ReviewStore
	games   GameStore
	queue   *redis.Client
	stream  string
	log     zerolog.Logger
}

func NewReviewService(reviews ReviewStore, games GameStore, queue *redis.Client, stream string, log zerolog.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		games:   games,
		queue:   queue,
		stream:  stream,
		log:     log,
	}
}

type ReviewInput struct {
	Rating  int
	Comment string
}

func (in ReviewInput) validate() error {
	if in.Rating < 1 || in.Rating > 5 {
		return validationError("rating must be between 1 and 5")
	}
	return nil
}

func (s *ReviewService) ListByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	return s.reviews.ListByGame(ctx, gameID)
}

func (s *ReviewService) Create(ctx context.Context, caller security.Claims, gameID string, input ReviewInput) (models.Review, error) {
	if err := input.validate(); err != nil {
		return models.Review{}, err
	}

	if _, err := s.games.GetByID(ctx, gameID); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		ID:      ids.New(),
		GameID:  gameID,
		UserID:  caller.UserID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return models.Review{}, err
	}
	s.enqueueRefresh(ctx, gameID)
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, caller security.Claims, reviewID string, input ReviewInput) (models.Review, error) {
	if err := input.validate(); err != nil {
		return models.Review{}, err
	}

	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return models.Review{}, err
	}
	if !canModify(caller, review) {
		return models.Review{}, ErrForbidden
	}

	review.Rating = input.Rating
	review.Comment = input.Comment

	if err := s.reviews.Update(ctx, review); err != nil {
		return models.Review{}, err
	}
	s.enqueueRefresh(ctx, review.GameID)
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, caller security.Claims, reviewID string) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !canModify(caller, review) {
		return ErrForbidden
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	s.enqueueRefresh(ctx, review.GameID)
	return nil
}

func canModify(caller security.Claims, review models.Review) bool {
	return review.UserID == caller.UserID || caller.Role == string(models.RoleAdmin)
}

func (s *ReviewService) enqueueRefresh(ctx context.Context, gameID string) {
	if s.queue == nil {
		return
	}
	err := s.queue.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{"game_id": gameID},
	}).Err()
	if err != nil {
		s.log.Warn().Err(err).Str("game_id", gameID).Msg("enqueue rating refresh failed")
	}
}
