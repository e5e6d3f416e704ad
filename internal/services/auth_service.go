package services

import (
	"errors"
	"time"

	"stashed/internal/apperrors"
	"stashed/internal/config"
	"stashed/internal/models"
	"stashed/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(email, password string) (string, *models.User, error)
	Logout(token string) error
	Resolve(token string) (*models.User, error)
	PurgeExpired() (int64, error)
}

type authServiceImpl struct {
	sessionRepo   repository.SessionRepository
	userRepo      repository.UserRepository
	userService   UserService
	configuration *config.Configuration
}

func NewAuthService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	userService UserService,
	configuration *config.Configuration,
) AuthService {
	return &authServiceImpl{
		sessionRepo:   sessionRepo,
		userRepo:      userRepo,
		userService:   userService,
		configuration: configuration,
	}
}

func (s *authServiceImpl) Login(email, password string) (string, *models.User, error) {
	user, err := s.userService.Authenticate(email, password)
	if err != nil {
		return "", nil, err
	}
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Duration(s.configuration.Auth.SessionTTLMinutes) * time.Minute),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return "", nil, apperrors.Wrap(err, "could not create session")
	}
	return session.Token, user, nil
}

func (s *authServiceImpl) Logout(token string) error {
	if err := s.sessionRepo.DeleteByToken(token); err != nil {
		return apperrors.Wrap(err, "could not delete session")
	}
	return nil
}

// Resolve maps a bearer token to its user. Expired or unknown tokens come
// back as InvalidCredentials.
func (s *authServiceImpl) Resolve(token string) (*models.User, error) {
	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not look up session")
	}
	if session == nil || session.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.New(apperrors.KindInvalidCredentials, "you must be logged in to perform this action")
	}
	user, err := s.userRepo.FindByID(session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindInvalidCredentials, "you must be logged in to perform this action")
		}
		return nil, apperrors.Wrap(err, "could not load user")
	}
	return user, nil
}

func (s *authServiceImpl) PurgeExpired() (int64, error) {
	return s.sessionRepo.DeleteExpired(time.Now())
}
