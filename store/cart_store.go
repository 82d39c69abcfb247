package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/potteryshop/shop-api/models"
)

// CartStore is the narrow persistence contract the cart flow depends on.
type CartStore interface {
	// FindByUserEmail returns (nil, nil) when the user has no cart yet.
	FindByUserEmail(email string) (*models.Cart, error)
	// Save upserts the cart together with its line items.
	Save(cart *models.Cart) error
}

type gormCartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) CartStore {
	return &gormCartStore{db: db}
}

func (s *gormCartStore) FindByUserEmail(email string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("user_email = ?", email).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (s *gormCartStore) Save(cart *models.Cart) error {
	return s.db.Save(cart).Error
}
