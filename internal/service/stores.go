package service

import (
	"context"

	"gamevault/internal/models"
)

// Store interfaces are satisfied by the pgx repositories; tests inject
// in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByEmailOrUsername(ctx context.Context, email string, username string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user models.User) error
	UpdateRole(ctx context.Context, id string, role models.Role) error
	Delete(ctx context.Context, id string) error
}

type GameStore interface {
	Create(ctx context.Context, game models.Game) error
	GetByID(ctx context.Context, id string) (models.Game, error)
	List(ctx context.Context) ([]models.Game, error)
	Update(ctx context.Context, game models.Game) error
	Delete(ctx context.Context, id string) error
}

type GenreStore interface {
	Create(ctx context.Context, genre models.Genre) error
	GetByID(ctx context.Context, id string) (models.Genre, error)
	List(ctx context.Context) ([]models.Genre, error)
	Update(ctx context.Context, genre models.Genre) error
	Delete(ctx context.Context, id string) error
}

type ReviewStore interface {
	Create(ctx context.Context, review models.Review) error
	GetByID(ctx context.Context, id string) (models.Review, error)
	ListByGame(ctx context.Context, gameID string) ([]models.Review, error)
	Update(ctx context.Context, review models.Review) error
	Delete(ctx context.Context, id string) error
}
