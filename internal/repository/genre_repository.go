package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamevault/internal/models"
)

type GenreRepository struct {
	pool *pgxpool.Pool
}

func NewGenreRepository(pool *pgxpool.Pool) *GenreRepository {
	return &GenreRepository{pool: pool}
}

func scanGenre(row pgx.Row) (models.Genre, error) {
	var genre models.Genre
	if err := row.Scan(
		&genre.ID,
		&genre.Title,
		&genre.Description,
		&genre.CreatedAt,
		&genre.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Genre{}, ErrGenreNotFound
		}
		return models.Genre{}, err
	}
	return genre, nil
}

func (r *GenreRepository) Create(ctx context.Context, genre models.Genre) error {
	const query = `
		INSERT INTO genres (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	_, err := r.pool.Exec(ctx, query, genre.ID, genre.Title, genre.Description)
	return err
}

func (r *GenreRepository) GetByID(ctx context.Context, id string) (models.Genre, error) {
	const query = `SELECT id, title, description, created_at, updated_at FROM genres WHERE id = $1`
	return scanGenre(r.pool.QueryRow(ctx, query, id))
}

func (r *GenreRepository) List(ctx context.Context) ([]models.Genre, error) {
	const query = `SELECT id, title, description, created_at, updated_at FROM genres ORDER BY title`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]models.Genre, 0)
	for rows.Next() {
		genre, err := scanGenre(rows)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, rows.Err()
}

func (r *GenreRepository) Update(ctx context.Context, genre models.Genre) error {
	const query = `
		UPDATE genres SET title = $2, description = $3, updated_at = NOW() WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, genre.ID, genre.Title, genre.Description)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGenreNotFound
	}
	return nil
}

func (r *GenreRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGenreNotFound
	}
	return nil
}
