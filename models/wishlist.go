package models

import "time"

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_wishlist_user_product,unique;not null" json:"userId"`
	ProductID uint      `gorm:"index:idx_wishlist_user_product,unique;not null" json:"productId"`
	CreatedAt time.Time `json:"created_at"`
}
