package models

import "time"

// Cart holds a user's in-progress selection. Version is bumped on every
// mutation so checkout can clear the cart with a compare-and-swap instead of
// racing a concurrent request.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"userId"` // one cart per user
	Version   uint       `gorm:"not null;default:0" json:"-"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// CartItem references the live catalog; prices are only snapshotted at
// checkout. At most one row per (cart, product) — duplicate adds merge.
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	CartID    uint `gorm:"index" json:"-"`
	ProductID uint `gorm:"not null" json:"productId"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}
