package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/proclubshub/backend/internal/domain/entity"
	repo "github.com/proclubshub/backend/internal/domain/repository"
	"github.com/proclubshub/backend/pkg/helpers"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService covers registration, credential verification and token issuance.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Logger: logger}
}

// Register hashes the password and persists the account. There is no
// existing-email check: registering the same address twice creates two
// independent accounts. Documented quirk, kept on purpose.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("register failed")
		}
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, *entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}
	if !helpers.VerifyPassword(u.Password, password) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return "", time.Time{}, nil, err
	}
	return token, exp, u, nil
}
