package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"dailyhome/internal/logger"
	"dailyhome/internal/metrics"
	"dailyhome/internal/models"
	"dailyhome/internal/repositories"
)

// Error variables
var (
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a login failure never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, passwordHash string) error
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{reader: reader, writer: writer}
}

// Register creates a new user with a bcrypt-hashed password. The friendly
// pre-check catches most duplicates; the unique constraint catches the rest.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		metrics.IncRegistration("conflict")
		return ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Create(ctx, username, string(hashedPassword)); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			metrics.IncRegistration("conflict")
			return ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	metrics.IncRegistration("success")
	return nil
}

// Login authenticates a user and returns the stored record on success.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		metrics.IncLogin("failure")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.IncLogin("failure")
		return nil, ErrInvalidCredentials
	}

	metrics.IncLogin("success")
	return user, nil
}
