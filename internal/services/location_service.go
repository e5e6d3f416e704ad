package services

import (
	"errors"

	"stashed/internal/apperrors"
	"stashed/internal/dto"
	"stashed/internal/models"
	"stashed/internal/repository"

	"gorm.io/gorm"
)

type LocationService interface {
	Create(userID uint, name, location, note string) (*models.StorageLocation, error)
	GetByID(userID, id uint) (*models.StorageLocation, error)
	ListByUser(userID uint) ([]models.StorageLocation, error)
	Update(userID, id uint, patch dto.LocationPatch) (*models.StorageLocation, error)
	GetContents(userID, id uint) (*dto.LocationContentsDTO, error)
	Destroy(userID, id uint) (*models.StorageLocation, error)
}

type locationServiceImpl struct {
	locationRepo repository.LocationRepository
}

func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationServiceImpl{locationRepo: locationRepo}
}

func (s *locationServiceImpl) Create(userID uint, name, location, note string) (*models.StorageLocation, error) {
	if name == "" {
		return nil, apperrors.New(apperrors.KindMissingRequiredField, "a location name is required")
	}
	if location == "" {
		location = "Home"
	}
	storageLocation := &models.StorageLocation{
		UserID:   userID,
		Name:     name,
		Location: location,
		Note:     note,
	}
	if err := s.locationRepo.Create(storageLocation); err != nil {
		return nil, apperrors.Wrap(err, "could not create storage location")
	}
	return storageLocation, nil
}

func (s *locationServiceImpl) GetByID(userID, id uint) (*models.StorageLocation, error) {
	return s.findOwned(userID, id)
}

func (s *locationServiceImpl) ListByUser(userID uint) ([]models.StorageLocation, error) {
	locations, err := s.locationRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not list storage locations")
	}
	return locations, nil
}

func (s *locationServiceImpl) Update(userID, id uint, patch dto.LocationPatch) (*models.StorageLocation, error) {
	if id == 0 {
		return nil, apperrors.New(apperrors.KindMissingRequiredField,
			"you must supply the storage location ID in your request")
	}
	location, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}
	changes := patch.Changes()
	if len(changes) == 0 {
		return location, nil
	}
	if err := s.locationRepo.UpdateFields(id, changes); err != nil {
		return nil, apperrors.Wrap(err, "could not update storage location")
	}
	return s.findOwned(userID, id)
}

func (s *locationServiceImpl) GetContents(userID, id uint) (*dto.LocationContentsDTO, error) {
	if _, err := s.findOwned(userID, id); err != nil {
		return nil, err
	}
	boxes, items, err := s.locationRepo.FindContents(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not load location contents")
	}
	return &dto.LocationContentsDTO{Boxes: boxes, Items: items}, nil
}

// Destroy refuses to remove a location that still has boxes or items at it,
// so physical contents are never orphaned.
func (s *locationServiceImpl) Destroy(userID, id uint) (*models.StorageLocation, error) {
	location, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}
	boxes, items, err := s.locationRepo.FindContents(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not load location contents")
	}
	if len(boxes) > 0 || len(items) > 0 {
		return nil, apperrors.New(apperrors.KindLocationNotEmpty,
			"that location still has boxes or items at it")
	}
	if err := s.locationRepo.Delete(id); err != nil {
		return nil, apperrors.Wrap(err, "could not delete storage location")
	}
	return location, nil
}

func (s *locationServiceImpl) findOwned(userID, id uint) (*models.StorageLocation, error) {
	location, err := s.locationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "there is no location with that ID")
		}
		return nil, apperrors.Wrap(err, "could not load storage location")
	}
	if location.UserID != userID {
		return nil, apperrors.New(apperrors.KindOwnershipMismatch,
			"you do not have permission to access that data")
	}
	return location, nil
}
