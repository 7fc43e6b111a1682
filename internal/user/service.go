package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quillnote/quillnote-api/internal/auth"
	"github.com/quillnote/quillnote-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// tokenTTL matches the 7-day session length the web client expects.
const tokenTTL = 7 * 24 * time.Hour

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

type UserService interface {
	// Login verifies credentials for a known username and registers the
	// account on first sight. A wrong password for an existing user fails.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	log := config.WithContext(ctx)

	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	u, err := s.repo.GetByUsername(username)
	if err != nil {
		log.WithError(err).Error("failed to look up user")
		return nil, err
	}

	if u == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u = &User{
			ID:           uuid.New(),
			Username:     username,
			PasswordHash: string(hash),
			Role:         "student",
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("failed to register user")
			return nil, err
		}
		log.Infof("registered new user %s", username)
	} else if u.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			log.Warnf("invalid password for user %s", username)
			return nil, ErrInvalidCredentials
		}
	}

	token, err := auth.GenerateJWTWithUsername(u.ID.String(), u.Username, u.Role, tokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Username: u.Username, UserID: u.ID.String()}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(id)
}
