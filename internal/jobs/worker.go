package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RatingCatalog is the slice of the game store the worker needs.
type RatingCatalog interface {
	ListIDs(ctx context.Context) ([]string, error)
	SetRating(ctx context.Context, id string, rating *float64) error
}

// RatingSource aggregates stored reviews.
type RatingSource interface {
	RatingSummary(ctx context.Context, gameID string) (avg float64, count int, err error)
}

// Worker consumes rating-refresh tasks and writes derived average
// ratings back into the games table. An empty game_id means refresh
// everything.
type Worker struct {
	queue   *redis.Client
	stream  string
	games   RatingCatalog
	reviews RatingSource
	log     zerolog.Logger
}

func NewWorker(queue *redis.Client, stream string, games RatingCatalog, reviews RatingSource, log zerolog.Logger) *Worker {
	return &Worker{
		queue:   queue,
		stream:  stream,
		games:   games,
		reviews: reviews,
		log:     log,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	if w.queue == nil {
		<-ctx.Done()
		return ctx.Err()
	}

	lastID := "$"
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := w.queue.XRead(ctx, &redis.XReadArgs{
			Streams: []string{w.stream, lastID},
			Count:   10,
			Block:   5 * time.Second,
		}).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.log.Error().Err(err).Msg("stream read error")
			time.Sleep(2 * time.Second)
			continue
		}

		for _, stream := range result {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				gameID, _ := msg.Values["game_id"].(string)
				if err := w.Refresh(ctx, gameID); err != nil {
					w.log.Error().
						Err(err).
						Str("message_id", msg.ID).
						Str("game_id", gameID).
						Msg("rating refresh failed")
				}
			}
		}
	}
}

// Refresh recomputes the average rating for one game, or for every
// game when gameID is empty.
func (w *Worker) Refresh(ctx context.Context, gameID string) error {
	if gameID != "" {
		return w.refreshOne(ctx, gameID)
	}

	ids, err := w.games.ListIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := w.refreshOne(ctx, id); err != nil {
			w.log.Warn().Err(err).Str("game_id", id).Msg("refresh skipped")
		}
	}
	return nil
}

func (w *Worker) refreshOne(ctx context.Context, gameID string) error {
	avg, count, err := w.reviews.RatingSummary(ctx, gameID)
	if err != nil {
		return err
	}

	var rating *float64
	if count > 0 {
		rating = &avg
	}
	return w.games.SetRating(ctx, gameID, rating)
}
