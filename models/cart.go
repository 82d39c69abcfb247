package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserEmail string     `gorm:"uniqueIndex;not null" json:"user_email"`        // Enforces ONE cart per user
	Products  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // Ordered line items, append-only
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	CartID      uint    `gorm:"index" json:"-"`
	Name        string  `json:"name"`
	Description string  `json:"desc"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
	AddedAt     time.Time
}
