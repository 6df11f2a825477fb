package models

import "time"

type Product struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	OriginalPrice   float64   `gorm:"not null" json:"originalPrice"`
	DiscountedPrice float64   `gorm:"not null" json:"discountedPrice"`
	Discount        float64   `gorm:"not null" json:"discount"`
	Rating          float64   `gorm:"default:5" json:"rating"`
	Reviews         int       `gorm:"default:1" json:"reviews"`
	ImageURL        string    `gorm:"not null" json:"imageUrl"`
	Category        string    `gorm:"default:'Auto parts'" json:"category"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
