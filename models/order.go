package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the five order statuses. There is no
// transition graph: the admin panel may move an order from any status to any
// other, matching how the storefront has always behaved.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is an immutable record of a completed checkout. Only Status may
// change after creation, and only through the admin surface.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      string      `gorm:"index;not null" json:"userId"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `gorm:"not null" json:"totalAmount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem freezes quantity and unit price at checkout time. Price is the
// product's discounted price when the order was placed; later catalog edits
// never touch it.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `gorm:"not null" json:"productId"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
