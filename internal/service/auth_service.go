package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"gamevault/internal/config"
	"gamevault/internal/ids"
	"gamevault/internal/models"
	"gamevault/internal/repository"
	"gamevault/internal/security"
)

type AuthService struct {
	users UserStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Surname  string
	Bio      string
}

type AuthResult struct {
	Token string
	User  models.User
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	if input.Email == "" || input.Username == "" || input.Password == "" {
		return AuthResult{}, validationError("username, email and password are required")
	}

	// Email collision wins when both values collide.
	if existing, err := s.users.FindByEmailOrUsername(ctx, input.Email, input.Username); err == nil {
		if existing.Email == input.Email {
			return AuthResult{}, repository.ErrDuplicateEmail
		}
		return AuthResult{}, repository.ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
		Name:         input.Name,
		Surname:      input.Surname,
		Bio:          input.Bio,
		Role:         models.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	return s.issue(user)
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || input.Password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user models.User) (AuthResult, error) {
	token, err := security.IssueToken(s.cfg.Security.JWTSecret, user, s.cfg.Security.TokenTTL)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: user}, nil
}

// ProfileUpdate carries the allow-listed profile fields. Nil means
// "leave unchanged"; anything a caller posts outside this set never
// reaches the store.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Name     *string
	Surname  *string
	Bio      *string
	Avatar   *string

	Password        *string
	CurrentPassword string
}

func (u ProfileUpdate) empty() bool {
	return u.Username == nil && u.Email == nil && u.Name == nil &&
		u.Surname == nil && u.Bio == nil && u.Avatar == nil && u.Password == nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (models.User, error) {
	if update.empty() {
		return models.User{}, validationError("no valid fields to update")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if update.Password != nil {
		if update.CurrentPassword == "" {
			return models.User{}, validationError("current password is required to change the password")
		}
		ok, err := security.VerifyPassword(update.CurrentPassword, user.PasswordHash)
		if err != nil || !ok {
			return models.User{}, ErrInvalidCredentials
		}
		hash, err := security.HashPassword(*update.Password)
		if err != nil {
			return models.User{}, err
		}
		user.PasswordHash = hash
	}

	if update.Username != nil {
		user.Username = strings.TrimSpace(*update.Username)
	}
	if update.Email != nil {
		user.Email = strings.TrimSpace(strings.ToLower(*update.Email))
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Surname != nil {
		user.Surname = *update.Surname
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Avatar != nil {
		user.AvatarURL = update.Avatar
	}

	if err := s.users.Update(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateRole changes a user's stored role. Tokens already issued keep
// their old role claim until they expire.
func (s *AuthService) UpdateRole(ctx context.Context, userID string, role models.Role) (models.User, error) {
	if !role.Valid() {
		return models.User{}, validationError("invalid role")
	}

	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return models.User{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	s.log.Info().Str("user_id", userID).Str("role", string(role)).Msg("role updated")
	return user, nil
}
