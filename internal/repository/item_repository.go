package repository

import (
	"stashed/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	FindByUserID(userID uint) ([]models.Item, error)
	FindByLocationID(locationID uint) ([]models.Item, error)
	UpdateFields(id uint, changes map[string]interface{}) error
	DeleteWithMembership(id uint) error
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl[T]) FindByUserID(userID uint) ([]models.Item, error) {
	items := make([]models.Item, 0)
	err := r.db.Where("user_id = ?", userID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl[T]) FindByLocationID(locationID uint) ([]models.Item, error) {
	items := make([]models.Item, 0)
	err := r.db.Where("location_id = ?", locationID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl[T]) UpdateFields(id uint, changes map[string]interface{}) error {
	return r.db.Model(&models.Item{}).Where("id = ?", id).Updates(changes).Error
}

// DeleteWithMembership drops the item's membership row (if any) and the item
// itself in one transaction.
func (r *ItemRepositoryImpl[T]) DeleteWithMembership(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.BoxItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, id).Error
	})
}
