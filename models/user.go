package models

import "time"

type User struct {
	ID                string  `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"not null" json:"name"`
	Email             string  `gorm:"unique;not null" json:"email"`
	Password          string  `gorm:"not null" json:"-"` // bcrypt hash, never the plaintext
	DateOfBirth       string  `gorm:"not null" json:"date_of_birth"`
	IsVerified        bool    `gorm:"default:false" json:"is_verified"`
	VerificationToken *string `json:"-"` // set at signup, NULL once verified
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
