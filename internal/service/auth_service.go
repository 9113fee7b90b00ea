package service

import (
	"context"
	"fmt"
	"time"

	"coffee-filter-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and verifies bearer tokens and controls who may mutate
// shop records.
type AuthService struct {
	repo          UserRepository
	secret        []byte
	tokenDuration time.Duration
}

// UserRepository interface for dependency injection
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, username, hashedPassword string, isAdmin bool) (*models.User, error)
	HasAdmin(ctx context.Context) (bool, error)
	PromoteToAdmin(ctx context.Context, username string) error
}

// NewAuthService creates a new auth service
func NewAuthService(repo UserRepository, secret string, tokenDuration time.Duration) *AuthService {
	if tokenDuration == 0 {
		tokenDuration = 24 * time.Hour
	}
	return &AuthService{repo: repo, secret: []byte(secret), tokenDuration: tokenDuration}
}

// Login verifies the credentials and returns a signed bearer token. Any
// failure is ErrRejected; the caller never learns whether the username or the
// password was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("service: failed to fetch user: %w", err)
	}
	if user == nil {
		return "", ErrRejected
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", ErrRejected
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.Username,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(s.tokenDuration).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("service: failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a bearer token and returns the identity it carries.
func (s *AuthService) Verify(tokenString string) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrRejected
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrRejected
	}

	username, _ := claims["sub"].(string)
	if username == "" {
		return nil, ErrRejected
	}
	isAdmin, _ := claims["is_admin"].(bool)

	return &models.Identity{Username: username, IsAdmin: isAdmin}, nil
}

// EnsureAdmin makes sure at least one admin account exists. When none does,
// the configured username is promoted if it already exists, or created with
// the configured password otherwise.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	exists, err := s.repo.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to check for admin: %w", err)
	}
	if exists {
		return nil
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("service: failed to fetch user: %w", err)
	}
	if user != nil {
		if err := s.repo.PromoteToAdmin(ctx, username); err != nil {
			return fmt.Errorf("service: failed to promote admin: %w", err)
		}
		log.Info().Str("username", username).Msg("promoted existing user to admin")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: failed to hash password: %w", err)
	}
	if _, err := s.repo.CreateUser(ctx, username, string(hashed), true); err != nil {
		return fmt.Errorf("service: failed to create admin: %w", err)
	}
	log.Info().Str("username", username).Msg("created admin user")
	return nil
}
