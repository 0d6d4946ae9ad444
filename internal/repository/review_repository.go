package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamevault/internal/models"
)

const reviewColumns = `
	id, game_id, user_id, rating, comment, created_at, updated_at
`

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func scanReview(row pgx.Row) (models.Review, error) {
	var review models.Review
	if err := row.Scan(
		&review.ID,
		&review.GameID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}
		return models.Review{}, err
	}
	return review, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review models.Review) error {
	const query = `
		INSERT INTO reviews (id, game_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.GameID,
		review.UserID,
		review.Rating,
		review.Comment,
	)
	return err
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (models.Review, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	return scanReview(r.pool.QueryRow(ctx, query, id))
}

func (r *ReviewRepository) ListByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE game_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, review models.Review) error {
	const query = `
		UPDATE reviews SET rating = $2, comment = $3, updated_at = NOW() WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, review.ID, review.Rating, review.Comment)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// RatingSummary returns the average rating and review count for a game.
// count == 0 means the game has no reviews and the caller should clear
// the stored rating.
func (r *ReviewRepository) RatingSummary(ctx context.Context, gameID string) (float64, int, error) {
	const query = `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE game_id = $1`

	var avg float64
	var count int
	if err := r.pool.QueryRow(ctx, query, gameID).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}
