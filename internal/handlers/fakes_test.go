package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"gamevault/internal/config"
	"gamevault/internal/models"
	"gamevault/internal/repository"
	"gamevault/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret"

type testEnv struct {
	engine *gin.Engine
	users  *memUserStore
	games  *memGameStore
}

// newTestEnv wires a HandlerSet over in-memory stores, no postgres,
// redis or object storage.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.AppConfig{
		Environment: "test",
		Security: config.SecurityConfig{
			JWTSecret: testSecret,
			TokenTTL:  3 * time.Hour,
		},
	}
	log := zerolog.Nop()

	users := newMemUserStore()
	games := newMemGameStore()
	genres := newMemGenreStore()
	reviews := newMemReviewStore()

	h := HandlerSet{
		log:     log,
		cfg:     cfg,
		auth:    service.NewAuthService(users, cfg, log),
		catalog: service.NewCatalogService(games, genres, nil, log),
		reviews: service.NewReviewService(reviews, games, nil, "", log),
		users:   users,
	}

	engine := gin.New()
	h.Register(engine.Group("/api"))

	return &testEnv{engine: engine, users: users, games: games}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// register creates an account through the HTTP surface and returns the
// token and user id.
func (e *testEnv) register(t *testing.T, username, email, password string) (token, userID string) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/users/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	token = body["token"].(string)
	userID = body["user"].(map[string]any)["id"].(string)
	return token, userID
}

// In-memory stores mirroring the repository error contract.

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
