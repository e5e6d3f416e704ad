package repository

import (
	"errors"
	"time"

	"stashed/internal/models"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *models.Session) error
	FindByToken(token string) (*models.Session, error)
	DeleteByToken(token string) error
	DeleteExpired(now time.Time) (int64, error)
}

type SessionRepositoryImpl[T models.Session] struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &SessionRepositoryImpl[models.Session]{db: db}
}

func (r *SessionRepositoryImpl[T]) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *SessionRepositoryImpl[T]) FindByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl[T]) DeleteByToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

func (r *SessionRepositoryImpl[T]) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at <= ?", now).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
