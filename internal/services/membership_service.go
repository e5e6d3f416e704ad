package services

import (
	"errors"

	"stashed/internal/apperrors"
	"stashed/internal/dto"
	"stashed/internal/models"
	"stashed/internal/repository"

	"gorm.io/gorm"
)

// MembershipService is the one place that writes an item's location as a
// consequence of box membership. Assigning, reassigning, relocating a box and
// relocating a boxed item all have to leave item.location_id equal to the
// containing box's location; funneling them through here keeps the rule from
// being re-implemented at each entry point.
type MembershipService interface {
	Assign(userID, itemID, boxID uint) (*models.BoxItem, error)
	Reassign(userID, itemID, boxID uint) (*models.BoxItem, error)
	Unassign(userID, itemID uint) (*models.BoxItem, error)
	GetByItem(userID, itemID uint) (*models.BoxItem, error)
	ListByBox(userID, boxID uint) ([]models.BoxItem, error)
	RelocateBox(box *models.Box, patch dto.BoxPatch) error
	RelocateItem(item *models.Item, patch dto.ItemPatch) error
}

type membershipServiceImpl struct {
	boxItemRepo repository.BoxItemRepository
	itemRepo    repository.ItemRepository
	boxRepo     repository.BoxRepository
}

func NewMembershipService(
	boxItemRepo repository.BoxItemRepository,
	itemRepo repository.ItemRepository,
	boxRepo repository.BoxRepository,
) MembershipService {
	return &membershipServiceImpl{
		boxItemRepo: boxItemRepo,
		itemRepo:    itemRepo,
		boxRepo:     boxRepo,
	}
}

func (s *membershipServiceImpl) Assign(userID, itemID, boxID uint) (*models.BoxItem, error) {
	item, box, err := s.loadPair(userID, itemID, boxID)
	if err != nil {
		return nil, err
	}
	existing, err := s.boxItemRepo.FindByItemID(itemID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not check box membership")
	}
	if existing != nil {
		return nil, apperrors.New(apperrors.KindDuplicateMembership, "that item is already in a box")
	}
	membership, err := s.boxItemRepo.Assign(item, box)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not put the item in the box")
	}
	return membership, nil
}

func (s *membershipServiceImpl) Reassign(userID, itemID, boxID uint) (*models.BoxItem, error) {
	existing, err := s.boxItemRepo.FindByItemID(itemID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not check box membership")
	}
	if existing == nil {
		return nil, apperrors.New(apperrors.KindNotInBox, "that item is not in a box")
	}
	item, box, err := s.loadPair(userID, itemID, boxID)
	if err != nil {
		return nil, err
	}
	membership, err := s.boxItemRepo.Reassign(item, box)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not move the item to the box")
	}
	return membership, nil
}

// Unassign drops the membership row and leaves the item's location alone, so
// the item keeps the spot it was last synced to.
func (s *membershipServiceImpl) Unassign(userID, itemID uint) (*models.BoxItem, error) {
	membership, err := s.GetByItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.boxItemRepo.Unassign(itemID); err != nil {
		return nil, apperrors.Wrap(err, "could not take the item out of the box")
	}
	return membership, nil
}

func (s *membershipServiceImpl) GetByItem(userID, itemID uint) (*models.BoxItem, error) {
	if _, err := s.loadOwnedItem(userID, itemID); err != nil {
		return nil, err
	}
	membership, err := s.boxItemRepo.FindByItemID(itemID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not check box membership")
	}
	if membership == nil {
		return nil, apperrors.New(apperrors.KindNotInBox, "that item is not in a box")
	}
	return membership, nil
}

func (s *membershipServiceImpl) ListByBox(userID, boxID uint) ([]models.BoxItem, error) {
	if _, err := s.loadOwnedBox(userID, boxID); err != nil {
		return nil, err
	}
	memberships, err := s.boxItemRepo.FindByBoxID(boxID)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not list box contents")
	}
	return memberships, nil
}

func (s *membershipServiceImpl) RelocateBox(box *models.Box, patch dto.BoxPatch) error {
	if err := s.boxItemRepo.RelocateBox(box.ID, patch.Changes()); err != nil {
		return apperrors.Wrap(err, "could not move the box")
	}
	return nil
}

func (s *membershipServiceImpl) RelocateItem(item *models.Item, patch dto.ItemPatch) error {
	if err := s.boxItemRepo.RelocateItem(item.ID, patch.Changes()); err != nil {
		return apperrors.Wrap(err, "could not move the item")
	}
	return nil
}

// loadPair fetches the item and the box and requires both to belong to the
// requesting user.
func (s *membershipServiceImpl) loadPair(userID, itemID, boxID uint) (*models.Item, *models.Box, error) {
	item, err := s.loadOwnedItem(userID, itemID)
	if err != nil {
		return nil, nil, err
	}
	box, err := s.loadOwnedBox(userID, boxID)
	if err != nil {
		return nil, nil, err
	}
	return item, box, nil
}

func (s *membershipServiceImpl) loadOwnedItem(userID, itemID uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(itemID)
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

func (s *membershipServiceImpl) loadOwnedBox(userID, boxID uint) (*models.Box, error) {
	box, err := s.boxRepo.FindByID(boxID)
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
