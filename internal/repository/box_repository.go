package repository

import (
	"stashed/internal/dto"
	"stashed/internal/models"

	"gorm.io/gorm"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	FindByUserID(userID uint) ([]dto.BoxItemRow, error)
	FindByLocationID(locationID uint) ([]models.Box, error)
	UpdateFields(id uint, changes map[string]interface{}) error
	DeleteWithMembers(id uint) error
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

// FindByUserID returns one row per (box, member item) pair so the caller can
// fold the result into hydrated boxes. Boxes without members still produce a
// row with NULL item columns.
func (r *BoxRepositoryImpl[T]) FindByUserID(userID uint) ([]dto.BoxItemRow, error) {
	rows := make([]dto.BoxItemRow, 0)
	err := r.db.Table("boxes").
		Select(`boxes.id AS box_id, boxes.user_id, boxes.label,
			boxes.description AS box_description, boxes.category AS box_category,
			boxes.location_id AS box_location_id,
			items.id AS item_id, items.name AS item_name,
			items.description AS item_description, items.category AS item_category,
			items.quantity, items.image_url, items.location_id AS item_location_id`).
		Joins("LEFT JOIN box_items ON box_items.box_id = boxes.id").
		Joins("LEFT JOIN items ON items.id = box_items.item_id").
		Where("boxes.user_id = ?", userID).
		Order("boxes.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BoxRepositoryImpl[T]) FindByLocationID(locationID uint) ([]models.Box, error) {
	boxes := make([]models.Box, 0)
	err := r.db.Where("location_id = ?", locationID).Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl[T]) UpdateFields(id uint, changes map[string]interface{}) error {
	return r.db.Model(&models.Box{}).Where("id = ?", id).Updates(changes).Error
}

// DeleteWithMembers removes the box's membership rows and then the box, in
// one transaction. Member items survive with their last synced location.
func (r *BoxRepositoryImpl[T]) DeleteWithMembers(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("box_id = ?", id).Delete(&models.BoxItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Box{}, id).Error
	})
}
