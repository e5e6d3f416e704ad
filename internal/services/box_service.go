package services

import (
	"errors"

	"stashed/internal/apperrors"
	"stashed/internal/dto"
	"stashed/internal/mapper"
	"stashed/internal/models"
	"stashed/internal/repository"

	"gorm.io/gorm"
)

type BoxService interface {
	Create(userID uint, label, description, category string, locationID *uint) (*models.Box, error)
	GetByID(userID, id uint) (*dto.BoxGetDTO, error)
	ListByUser(userID uint) ([]dto.BoxGetDTO, error)
	ListByLocation(userID, locationID uint) ([]models.Box, error)
	Update(userID, id uint, patch dto.BoxPatch) (*models.Box, error)
	Destroy(userID, id uint) (*models.Box, error)
}

type boxServiceImpl struct {
	boxRepo      repository.BoxRepository
	boxItemRepo  repository.BoxItemRepository
	locationRepo repository.LocationRepository
	membership   MembershipService
}

func NewBoxService(
	boxRepo repository.BoxRepository,
	boxItemRepo repository.BoxItemRepository,
	locationRepo repository.LocationRepository,
	membership MembershipService,
) BoxService {
	return &boxServiceImpl{
		boxRepo:      boxRepo,
		boxItemRepo:  boxItemRepo,
		locationRepo: locationRepo,
		membership:   membership,
	}
}

func (s *boxServiceImpl) Create(userID uint, label, description, category string, locationID *uint) (*models.Box, error) {
	if label == "" {
		return nil, apperrors.New(apperrors.KindMissingRequiredField, "a box label is required")
	}
	if category == "" {
		category = "MISC"
	}
	if locationID != nil {
		if err := s.requireOwnedLocation(userID, *locationID); err != nil {
			return nil, err
		}
	}
	box := &models.Box{
		UserID:      userID,
		Label:       label,
		Description: description,
		Category:    category,
		LocationID:  locationID,
	}
	if err := s.boxRepo.Create(box); err != nil {
		return nil, apperrors.Wrap(err, "could not create box")
	}
	return box, nil
}

func (s *boxServiceImpl) GetByID(userID, id uint) (*dto.BoxGetDTO, error) {
	box, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}
	members, err := s.boxItemRepo.FindMemberItems(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not load box contents")
	}
	return mapper.ToBoxGetDTO(box, mapper.ToItemSummaries(members)), nil
}

func (s *boxServiceImpl) ListByUser(userID uint) ([]dto.BoxGetDTO, error) {
	rows, err := s.boxRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not list boxes")
	}
	return mapper.ReduceBoxRows(rows), nil
}

func (s *boxServiceImpl) ListByLocation(userID, locationID uint) ([]models.Box, error) {
	if err := s.requireOwnedLocation(userID, locationID); err != nil {
		return nil, err
	}
	boxes, err := s.boxRepo.FindByLocationID(locationID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not list boxes at that location")
	}
	return boxes, nil
}

// Update applies the supplied fields only. A location change goes through
// the membership engine so every member item is moved in the same
// transaction as the box row.
func (s *boxServiceImpl) Update(userID, id uint, patch dto.BoxPatch) (*models.Box, error) {
	if id == 0 {
		return nil, apperrors.New(apperrors.KindMissingRequiredField,
			"you must supply the box ID in your request")
	}
	box, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return box, nil
	}
	if patch.LocationID != nil {
		if err := s.requireOwnedLocation(userID, *patch.LocationID); err != nil {
			return nil, err
		}
		if err := s.membership.RelocateBox(box, patch); err != nil {
			return nil, err
		}
	} else if err := s.boxRepo.UpdateFields(id, patch.Changes()); err != nil {
		return nil, apperrors.Wrap(err, "could not update box")
	}
	return s.findOwned(userID, id)
}

// Destroy removes the box and its membership rows. Member items are orphaned
// rather than deleted; they keep their last synced location.
func (s *boxServiceImpl) Destroy(userID, id uint) (*models.Box, error) {
	box, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.boxRepo.DeleteWithMembers(id); err != nil {
		return nil, apperrors.Wrap(err, "could not delete box")
	}
	return box, nil
}

func (s *boxServiceImpl) findOwned(userID, id uint) (*models.Box, error) {
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "there is no box with that ID")
		}
		return nil, apperrors.Wrap(err, "could not load box")
	}
	if box.UserID != userID {
		return nil, apperrors.New(apperrors.KindOwnershipMismatch,
			"you do not have permission to access that data")
	}
	return box, nil
}

func (s *boxServiceImpl) requireOwnedLocation(userID, locationID uint) error {
	location, err := s.locationRepo.FindByID(locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindNotFound, "there is no location with that ID")
		}
		return apperrors.Wrap(err, "could not load storage location")
	}
	if location.UserID != userID {
		return apperrors.New(apperrors.KindOwnershipMismatch,
			"you do not have permission to access that data")
	}
	return nil
}
