package repository

import (
	"errors"

	"stashed/internal/dto"
	"stashed/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	GenericRepository[models.User]
	FindByEmail(email string) (*models.User, error)
	DestroyData(userID uint) (*dto.CascadeReport, error)
	DestroyCascade(userID uint) (*dto.CascadeReport, error)
}

type UserRepositoryImpl[T models.User] struct {
	GenericRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl[models.User]{
		GenericRepository: NewGenericRepository[models.User](db),
		db:                db,
	}
}

func (r *UserRepositoryImpl[T]) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// DestroyData removes everything the user owns, in dependency order, inside
// one transaction. The user row itself is kept.
func (r *UserRepositoryImpl[T]) DestroyData(userID uint) (*dto.CascadeReport, error) {
	var report *dto.CascadeReport
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		report, txErr = cascadeUserData(tx, userID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// DestroyCascade removes the user's data and then the user row, atomically.
func (r *UserRepositoryImpl[T]) DestroyCascade(userID uint) (*dto.CascadeReport, error) {
	var report *dto.CascadeReport
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		report, txErr = cascadeUserData(tx, userID)
		if txErr != nil {
			return txErr
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// cascadeUserData deletes box_items, boxes, items, storage_locations and
// sessions owned by userID. Memberships go first because they reference both
// boxes and items; locations go last because boxes and items reference them.
func cascadeUserData(tx *gorm.DB, userID uint) (*dto.CascadeReport, error) {
	report := &dto.CascadeReport{
		BoxItems:  make([]models.BoxItem, 0),
		Boxes:     make([]models.Box, 0),
		Items:     make([]models.Item, 0),
		Locations: make([]models.StorageLocation, 0),
	}

	ownedItems := tx.Model(&models.Item{}).Select("id").Where("user_id = ?", userID)
	if err := tx.Where("item_id IN (?)", ownedItems).Find(&report.BoxItems).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("item_id IN (?)", ownedItems).Delete(&models.BoxItem{}).Error; err != nil {
		return nil, err
	}

	if err := tx.Where("user_id = ?", userID).Find(&report.Boxes).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.Box{}).Error; err != nil {
		return nil, err
	}

	if err := tx.Where("user_id = ?", userID).Find(&report.Items).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.Item{}).Error; err != nil {
		return nil, err
	}

	if err := tx.Where("user_id = ?", userID).Find(&report.Locations).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.StorageLocation{}).Error; err != nil {
		return nil, err
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.Session{}).Error; err != nil {
		return nil, err
	}
	return report, nil
}
