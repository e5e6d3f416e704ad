package repository

import (
	"errors"

	"stashed/internal/models"

	"gorm.io/gorm"
)

// BoxItemRepository holds every write that can change an item's location as a
// consequence of box membership. Keeping those writes here, each inside one
// transaction, is what keeps item.location_id consistent with the containing
// box no matter which entry point triggered the change.
type BoxItemRepository interface {
	FindByItemID(itemID uint) (*models.BoxItem, error)
	FindByBoxID(boxID uint) ([]models.BoxItem, error)
	FindMemberItems(boxID uint) ([]models.Item, error)
	Assign(item *models.Item, box *models.Box) (*models.BoxItem, error)
	Reassign(item *models.Item, box *models.Box) (*models.BoxItem, error)
	Unassign(itemID uint) error
	RelocateBox(boxID uint, changes map[string]interface{}) error
	RelocateItem(itemID uint, changes map[string]interface{}) error
}

type BoxItemRepositoryImpl[T models.BoxItem] struct {
	db *gorm.DB
}

func NewBoxItemRepository(db *gorm.DB) BoxItemRepository {
	return &BoxItemRepositoryImpl[models.BoxItem]{db: db}
}

func (r *BoxItemRepositoryImpl[T]) FindByItemID(itemID uint) (*models.BoxItem, error) {
	var membership models.BoxItem
	err := r.db.Where("item_id = ?", itemID).First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (r *BoxItemRepositoryImpl[T]) FindByBoxID(boxID uint) ([]models.BoxItem, error) {
	memberships := make([]models.BoxItem, 0)
	err := r.db.Where("box_id = ?", boxID).Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *BoxItemRepositoryImpl[T]) FindMemberItems(boxID uint) ([]models.Item, error) {
	items := make([]models.Item, 0)
	err := r.db.
		Joins("JOIN box_items ON box_items.item_id = items.id").
		Where("box_items.box_id = ?", boxID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Assign inserts the membership row and pulls the item onto the box's
// location when the two differ.
func (r *BoxItemRepositoryImpl[T]) Assign(item *models.Item, box *models.Box) (*models.BoxItem, error) {
	membership := &models.BoxItem{ItemID: item.ID, BoxID: box.ID}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(membership).Error; err != nil {
			return err
		}
		if !uintPtrEqual(item.LocationID, box.LocationID) {
			if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).
				Update("location_id", box.LocationID).Error; err != nil {
				return err
			}
			item.LocationID = box.LocationID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return membership, nil
}

// Reassign moves an existing membership onto box and syncs the item location
// unconditionally, so repeating the call is harmless.
func (r *BoxItemRepositoryImpl[T]) Reassign(item *models.Item, box *models.Box) (*models.BoxItem, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BoxItem{}).Where("item_id = ?", item.ID).
			Update("box_id", box.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).
			Update("location_id", box.LocationID).Error; err != nil {
			return err
		}
		item.LocationID = box.LocationID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByItemID(item.ID)
}

func (r *BoxItemRepositoryImpl[T]) Unassign(itemID uint) error {
	return r.db.Where("item_id = ?", itemID).Delete(&models.BoxItem{}).Error
}

// RelocateBox applies the box changes and, when location_id is among them,
// moves every member item to the new location in the same transaction.
func (r *BoxItemRepositoryImpl[T]) RelocateBox(boxID uint, changes map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Box{}).Where("id = ?", boxID).Updates(changes).Error; err != nil {
			return err
		}
		locationID, ok := changes["location_id"]
		if !ok {
			return nil
		}
		members := tx.Model(&models.BoxItem{}).Select("item_id").Where("box_id = ?", boxID)
		return tx.Model(&models.Item{}).Where("id IN (?)", members).
			Update("location_id", locationID).Error
	})
}

// RelocateItem applies the item changes and drops any membership row in the
// same transaction: moving an item away from its box's location un-boxes it.
func (r *BoxItemRepositoryImpl[T]) RelocateItem(itemID uint, changes map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Item{}).Where("id = ?", itemID).Updates(changes).Error; err != nil {
			return err
		}
		return tx.Where("item_id = ?", itemID).Delete(&models.BoxItem{}).Error
	})
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
