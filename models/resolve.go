package models

import (
	"time"

	"gorm.io/gorm"
)

// Carts and orders reference products by id, and products can be deleted out
// from under them. Reads tolerate that: the projections below drop any item
// whose product no longer resolves, without ever persisting the removal. Both
// the cart and order endpoints go through this one place.

// CartItemView is a cart item with its product resolved for display.
type CartItemView struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

type CartView struct {
	UserID string         `json:"userId"`
	Items  []CartItemView `json:"items"`
}

// OrderItemView keeps the checkout-time price and quantity while resolving
// the product for current display fields (name, image).
type OrderItemView struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Product   Product `json:"product"`
}

type OrderView struct {
	ID          uint            `json:"id"`
	UserID      string          `json:"userId"`
	Items       []OrderItemView `json:"items"`
	TotalAmount float64         `json:"totalAmount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ResolveProducts loads the referenced products and returns them keyed by id.
// Missing ids are simply absent from the map.
func ResolveProducts(db *gorm.DB, ids []uint) (map[uint]Product, error) {
	if len(ids) == 0 {
		return map[uint]Product{}, nil
	}
	var products []Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

// CartProductIDs collects the product ids referenced by a cart.
func CartProductIDs(items []CartItem) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// OrderProductIDs collects the product ids referenced by a set of orders.
func OrderProductIDs(orders []Order) []uint {
	var ids []uint
	for _, o := range orders {
		for _, item := range o.Items {
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}

// SanitizeCart projects a cart for the client, dropping items whose product
// has been deleted. The stored cart is left untouched.
func SanitizeCart(cart Cart, products map[uint]Product) CartView {
	view := CartView{UserID: cart.UserID, Items: []CartItemView{}}
	for _, item := range cart.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		view.Items = append(view.Items, CartItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   product,
		})
	}
	return view
}

// SanitizeOrder projects an order for the client. The second return is false
// when none of the order's items resolve anymore; callers drop such orders
// from listings.
func SanitizeOrder(order Order, products map[uint]Product) (OrderView, bool) {
	view := OrderView{
		ID:          order.ID,
		UserID:      order.UserID,
		Items:       []OrderItemView{},
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}
	for _, item := range order.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		view.Items = append(view.Items, OrderItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Product:   product,
		})
	}
	return view, len(view.Items) > 0
}
