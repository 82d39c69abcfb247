package service

import (
	"fmt"
	"time"

	"github.com/potteryshop/shop-api/models"
	"github.com/potteryshop/shop-api/store"
)

// CartService orchestrates the per-user cart: lazily created on first
// add, then append-only. Repeated adds of the same product create
// separate line items rather than merging quantities.
type CartService struct {
	carts store.CartStore
}

func NewCartService(carts store.CartStore) *CartService {
	return &CartService{carts: carts}
}

// AddProduct appends the item to the user's cart, creating the cart if
// this is the first add. Find and save are separate round-trips, so
// concurrent adds for the same email can lose an update.
func (s *CartService) AddProduct(email string, item models.CartItem) (*models.Cart, error) {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	item.AddedAt = time.Now()

	cart, err := s.carts.FindByUserEmail(email)
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}
	if cart == nil {
		cart = &models.Cart{
			UserEmail: email,
			Products:  []models.CartItem{item},
		}
	} else {
		cart.Products = append(cart.Products, item)
	}

	if err := s.carts.Save(cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// GetCart returns the user's line items in stored order. A missing cart
// is an empty cart, not an error.
func (s *CartService) GetCart(email string) ([]models.CartItem, error) {
	cart, err := s.carts.FindByUserEmail(email)
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}
	if cart == nil || len(cart.Products) == 0 {
		return []models.CartItem{}, nil
	}
	return cart.Products, nil
}
