package service

import (
	"context"
	"sync"

	"gamevault/internal/models"
	"gamevault/internal/repository"
)

// In-memory stores standing in for the pgx repositories.

type memUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]models.User)}
}

func (s *memUserStore) Create(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *memUserStore) FindByEmailOrUsername(_ context.Context, email, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var byUsername *models.User
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
		if u.Username == username {
			v := u
			byUsername = &v
		}
	}
	if byUsername != nil {
		return *byUsername, nil
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (s *memUserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *memUserStore) Update(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *memUserStore) UpdateRole(_ context.Context, id string, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Role = role
	s.users[id] = u
	return nil
}

func (s *memUserStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type memGameStore struct {
	mu    sync.Mutex
	games map[string]models.Game
}

func newMemGameStore() *memGameStore {
	return &memGameStore{games: make(map[string]models.Game)}
}

func (s *memGameStore) Create(_ context.Context, game models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		if g.Title == game.Title {
			return repository.ErrDuplicateTitle
		}
	}
	s.games[game.ID] = game
	return nil
}

func (s *memGameStore) GetByID(_ context.Context, id string) (models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return models.Game{}, repository.ErrGameNotFound
	}
	return g, nil
}

func (s *memGameStore) List(_ context.Context) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Game, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, g)
	}
	return out, nil
}

func (s *memGameStore) Update(_ context.Context, game models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.ID]; !ok {
		return repository.ErrGameNotFound
	}
	s.games[game.ID] = game
	return nil
}

func (s *memGameStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return repository.ErrGameNotFound
	}
	delete(s.games, id)
	return nil
}

type memGenreStore struct {
	mu     sync.Mutex
	genres map[string]models.Genre
}

func newMemGenreStore() *memGenreStore {
	return &memGenreStore{genres: make(map[string]models.Genre)}
}

func (s *memGenreStore) Create(_ context.Context, genre models.Genre) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genres[genre.ID] = genre
	return nil
}

func (s *memGenreStore) GetByID(_ context.Context, id string) (models.Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.genres[id]
	if !ok {
		return models.Genre{}, repository.ErrGenreNotFound
	}
	return g, nil
}

func (s *memGenreStore) List(_ context.Context) ([]models.Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Genre, 0, len(s.genres))
	for _, g := range s.genres {
		out = append(out, g)
	}
	return out, nil
}

func (s *memGenreStore) Update(_ context.Context, genre models.Genre) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.genres[genre.ID]; !ok {
		return repository.ErrGenreNotFound
	}
	s.genres[genre.ID] = genre
	return nil
}

func (s *memGenreStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.genres[id]; !ok {
		return repository.ErrGenreNotFound
	}
	delete(s.genres, id)
	return nil
}

type memReviewStore struct {
	mu      sync.Mutex
	reviews map[string]models.Review
}

func newMemReviewStore() *memReviewStore {
	return &memReviewStore{reviews: make(map[string]models.Review)}
}

func (s *memReviewStore) Create(_ context.Context, review models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[review.ID] = review
	return nil
}

func (s *memReviewStore) GetByID(_ context.Context, id string) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return models.Review{}, repository.ErrReviewNotFound
	}
	return r, nil
}

func (s *memReviewStore) ListByGame(_ context.Context, gameID string) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Review
	for _, r := range s.reviews {
		if r.GameID == gameID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memReviewStore) Update(_ context.Context, review models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[review.ID]; !ok {
		return repository.ErrReviewNotFound
	}
	s.reviews[review.ID] = review
	return nil
}

func (s *memReviewStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(s.reviews, id)
	return nil
}
