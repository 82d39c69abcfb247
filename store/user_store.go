package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/potteryshop/shop-api/models"
)

// UserStore is the narrow persistence contract the auth flow depends on.
type UserStore interface {
	// FindByEmail returns (nil, nil) when no user exists for the email.
	FindByEmail(email string) (*models.User, error)
	// Create inserts the user; the unique index on email rejects duplicates.
	Create(user *models.User) error
	// UpdateFields applies a partial update to the user row for the email.
	UpdateFields(email string, fields map[string]interface{}) error
}

type gormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *gormUserStore) UpdateFields(email string, fields map[string]interface{}) error {
	return s.db.Model(&models.User{}).Where("email = ?", email).Updates(fields).Error
}
