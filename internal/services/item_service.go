package services

import (
	"errors"

	"stashed/internal/apperrors"
	"stashed/internal/dto"
	"stashed/internal/models"
	"stashed/internal/repository"

	"gorm.io/gorm"
)

type ItemService interface {
	Create(userID uint, name, description, category string, quantity int, imageURL string, locationID *uint) (*models.Item, error)
	GetByID(userID, id uint) (*models.Item, error)
	ListByUser(userID uint) ([]models.Item, error)
	ListByLocation(userID, locationID uint) ([]models.Item, error)
	Update(userID, id uint, patch dto.ItemPatch) (*models.Item, error)
	Destroy(userID, id uint) (*models.Item, error)
}

type itemServiceImpl struct {
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
	membership   MembershipService
}

func NewItemService(
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	membership MembershipService,
) ItemService {
	return &itemServiceImpl{itemRepo: itemRepo, locationRepo: locationRepo, membership: membership}
}

func (s *itemServiceImpl) Create(userID uint, name, description, category string, quantity int, imageURL string, locationID *uint) (*models.Item, error) {
	if name == "" {
		return nil, apperrors.New(apperrors.KindMissingRequiredField, "an item name is required")
	}
	if category == "" {
		category = "MISC"
	}
	if quantity <= 0 {
		quantity = 1
	}
	if locationID != nil {
		if err := s.requireOwnedLocation(userID, *locationID); err != nil {
			return nil, err
		}
	}
	item := &models.Item{
		UserID:      userID,
		Name:        name,
		Description: description,
		Category:    category,
		Quantity:    quantity,
		ImageURL:    imageURL,
		LocationID:  locationID,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, apperrors.Wrap(err, "could not create item")
	}
	return item, nil
}

func (s *itemServiceImpl) GetByID(userID, id uint) (*models.Item, error) {
	return s.findOwned(userID, id)
}

func (s *itemServiceImpl) ListByUser(userID uint) ([]models.Item, error) {
	items, err := s.itemRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not list items")
	}
	return items, nil
}

func (s *itemServiceImpl) ListByLocation(userID, locationID uint) ([]models.Item, error) {
	if err := s.requireOwnedLocation(userID, locationID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindByLocationID(locationID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not list items at that location")
	}
	return items, nil
}

// Update applies the supplied fields only. A location change goes through
// the membership engine, which drops any box membership in the same
// transaction: an item moved on its own no longer sits in its old box.
func (s *itemServiceImpl) Update(userID, id uint, patch dto.ItemPatch) (*models.Item, error) {
	if id == 0 {
		return nil, apperrors.New(apperrors.KindMissingRequiredField,
			"you must supply the item ID in your request")
	}
	item, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return item, nil
	}
	if patch.LocationID != nil {
		if err := s.requireOwnedLocation(userID, *patch.LocationID); err != nil {
			return nil, err
		}
		if err := s.membership.RelocateItem(item, patch); err != nil {
			return nil, err
		}
	} else if err := s.itemRepo.UpdateFields(id, patch.Changes()); err != nil {
		return nil, apperrors.Wrap(err, "could not update item")
	}
	return s.findOwned(userID, id)
}

func (s *itemServiceImpl) Destroy(userID, id uint) (*models.Item, error) {
	item, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.DeleteWithMembership(id); err != nil {
		return nil, apperrors.Wrap(err, "could not delete item")
	}
	return item, nil
}

func (s *itemServiceImpl) findOwned(userID, id uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "there is no item with that ID")
		}
		return nil, apperrors.Wrap(err, "could not load item")
	}
	if item.UserID != userID {
		return nil, apperrors.New(apperrors.KindOwnershipMismatch,
			"you do not have permission to access that data")
	}
	return item, nil
}

func (s *itemServiceImpl) requireOwnedLocation(userID, locationID uint) error {
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
