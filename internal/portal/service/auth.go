package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
	"github.com/yklabs/portal/pkg/cryptox"
	"github.com/yklabs/portal/pkg/jwtx"
	"github.com/yklabs/portal/pkg/slogx"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService implements registration and login: the only two places that
// touch password digests or mint tokens.
type AuthService struct {
	Store  store.Store
	Signer *jwtx.HS256Signer
}

// RegisterParams carries a registration request. Role may be empty, in which
// case the account defaults to the regular user role.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// Register creates a new account and returns a freshly issued token along
// with the stored user. Email uniqueness is enforced atomically by the store,
// so two concurrent registrations with the same email cannot both succeed.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	role := domain.Role(p.Role)
	if p.Role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return "", domain.User{}, ErrInvalidRole
	}

	digest, err := cryptox.HashPassword(p.Password)
	if err != nil {
		log.Error("password hashing failed", slog.Any("error", err))
		return "", domain.User{}, err
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Email:            p.Email,
		PasswordDigest:   digest,
		Name:             p.Name,
		Role:             role,
		RegistrationDate: time.Now().UTC(),
		LearningStats:    domain.NewLearningStats(),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", domain.User{}, ErrEmailTaken
		}
		return "", domain.User{}, err
	}

	token, err := s.Signer.SignFor(user.ID, user.Email, string(user.Role))
	if err != nil {
		log.Error("token signing failed", slog.Int64("user_id", user.ID), slog.Any("error", err))
		return "", domain.User{}, err
	}

	log.Info("user registered", slog.Int64("user_id", user.ID), slog.String("role", string(user.Role)))
	return token, user, nil
}

// Login verifies credentials and issues a token. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordDigest); err != nil {
		log.Info("login rejected", slog.Int64("user_id", user.ID))
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.Signer.SignFor(user.ID, user.Email, string(user.Role))
	if err != nil {
		log.Error("token signing failed", slog.Int64("user_id", user.ID), slog.Any("error", err))
		return "", domain.User{}, err
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	return token, user, nil
}
