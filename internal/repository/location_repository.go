package repository

import (
	"stashed/internal/models"

	"gorm.io/gorm"
)

type LocationRepository interface {
	GenericRepository[models.StorageLocation]
	FindByUserID(userID uint) ([]models.StorageLocation, error)
	UpdateFields(id uint, changes map[string]interface{}) error
	FindContents(locationID uint) ([]models.Box, []models.Item, error)
}

type LocationRepositoryImpl[T models.StorageLocation] struct {
	GenericRepository[models.StorageLocation]
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &LocationRepositoryImpl[models.StorageLocation]{
		GenericRepository: NewGenericRepository[models.StorageLocation](db),
		db:                db,
	}
}

func (r *LocationRepositoryImpl[T]) FindByUserID(userID uint) ([]models.StorageLocation, error) {
	locations := make([]models.StorageLocation, 0)
	err := r.db.Where("user_id = ?", userID).Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepositoryImpl[T]) UpdateFields(id uint, changes map[string]interface{}) error {
	return r.db.Model(&models.StorageLocation{}).Where("id = ?", id).Updates(changes).Error
}

func (r *LocationRepositoryImpl[T]) FindContents(locationID uint) ([]models.Box, []models.Item, error) {
	boxes := make([]models.Box, 0)
	if err := r.db.Where("location_id = ?", locationID).Find(&boxes).Error; err != nil {
		return nil, nil, err
	}
	items := make([]models.Item, 0)
	if err := r.db.Where("location_id = ?", locationID).Find(&items).Error; err != nil {
		return nil, nil, err
	}
	return boxes, items, nil
}
