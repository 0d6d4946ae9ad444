package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamevault/internal/models"
)

const gameColumns = `
	id, title, description, developer, release_year, price, cover_url, video_url, rating, genre_ids, created_at, updated_at
`

type GameRepository struct {
	pool *pgxpool.Pool
}

func NewGameRepository(pool *pgxpool.Pool) *GameRepository {
	return &GameRepository{pool: pool}
}

func scanGame(row pgx.Row) (models.Game, error) {
	var game models.Game
	if err := row.Scan(
		&game.ID,
		&game.Title,
		&game.Description,
		&game.Developer,
		&game.Release,
		&game.Price,
		&game.CoverURL,
		&game.VideoURL,
		&game.Rating,
		&game.GenreIDs,
		&game.CreatedAt,
		&game.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Game{}, ErrGameNotFound
		}
		return models.Game{}, err
	}
	return game, nil
}

func (r *GameRepository) Create(ctx context.Context, game models.Game) error {
	const query = `
		INSERT INTO games (
			id, title, description, developer, release_year, price, cover_url, video_url, genre_ids, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		)
	`
	_, err := r.pool.Exec(ctx, query,
		game.ID,
		game.Title,
		game.Description,
		game.Developer,
		game.Release,
		game.Price,
		game.CoverURL,
		game.VideoURL,
		game.GenreIDs,
	)
	return mapUniqueViolation(err)
}

func (r *GameRepository) GetByID(ctx context.Context, id string) (models.Game, error) {
	const query = `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	return scanGame(r.pool.QueryRow(ctx, query, id))
}

func (r *GameRepository) List(ctx context.Context) ([]models.Game, error) {
	const query = `SELECT ` + gameColumns + ` FROM games ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

func (r *GameRepository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM games`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *GameRepository) Update(ctx context.Context, game models.Game) error {
	const query = `
		UPDATE games
		SET title = $2, description = $3, developer = $4, release_year = $5,
		    price = $6, cover_url = $7, video_url = $8, genre_ids = $9, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query,
		game.ID,
		game.Title,
		game.Description,
		game.Developer,
		game.Release,
		game.Price,
		game.CoverURL,
		game.VideoURL,
		game.GenreIDs,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

// SetRating writes the derived average rating. A nil rating clears it
// (last review removed).
func (r *GameRepository) SetRating(ctx context.Context, id string, rating *float64) error {
	const query = `UPDATE games SET rating = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, rating)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (r *GameRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}
