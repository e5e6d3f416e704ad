package services

import (
	"errors"

	"stashed/internal/apperrors"
	"stashed/internal/dto"
	"stashed/internal/repository"

	"gorm.io/gorm"
)

// CascadeService tears down everything a user owns. Deletion order is fixed:
// box_items reference boxes and items, boxes and items reference locations,
// so memberships go first and locations last.
type CascadeService interface {
	DestroyUserData(userID uint) (*dto.CascadeReport, error)
	DestroyUser(userID uint) (*dto.CascadeReport, error)
}

type cascadeServiceImpl struct {
	userRepo repository.UserRepository
}

func NewCascadeService(userRepo repository.UserRepository) CascadeService {
	return &cascadeServiceImpl{userRepo: userRepo}
}

func (s *cascadeServiceImpl) DestroyUserData(userID uint) (*dto.CascadeReport, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	report, err := s.userRepo.DestroyData(userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not delete user data")
	}
	return report, nil
}

func (s *cascadeServiceImpl) DestroyUser(userID uint) (*dto.CascadeReport, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	report, err := s.userRepo.DestroyCascade(userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not delete user")
	}
	return report, nil
}

func (s *cascadeServiceImpl) requireUser(userID uint) error {
	_, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindUserNotFound, "there is no user with that ID")
		}
		return apperrors.Wrap(err, "could not load user")
	}
	return nil
}
