package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

var (
	// ErrEmptyCart means there is nothing to order: no cart, no items, or
	// every item references a deleted product.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCartConflict means the cart changed between reading it and clearing
	// it; the transaction is rolled back and no order exists.
	ErrCartConflict = errors.New("cart was modified during checkout")
)

// buildOrderItems snapshots the resolvable cart items at their current
// discounted price. Items whose product no longer exists are skipped.
func buildOrderItems(items []models.CartItem, products map[uint]models.Product) ([]models.OrderItem, float64) {
	var orderItems []models.OrderItem
	var total float64
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.DiscountedPrice,
		})
		total += product.DiscountedPrice * float64(item.Quantity)
	}
	return orderItems, total
}

// Checkout converts the user's cart into a Pending order and empties the
// cart, all inside one transaction. The cart is cleared only if its version
// still matches the one read at the start, so two concurrent checkouts cannot
// both consume the same items: the loser rolls back with ErrCartConflict.
func Checkout(db *gorm.DB, userID string) (models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}

		products, err := models.ResolveProducts(tx, models.CartProductIDs(cart.Items))
		if err != nil {
			return err
		}

		items, total := buildOrderItems(cart.Items, products)
		if len(items) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{
			UserID:      userID,
			Items:       items,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Cart{}).
			Where("id = ? AND version = ?", cart.ID, cart.Version).
			Update("version", cart.Version+1)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCartConflict
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		order, err := Checkout(db, userID)
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Cart is empty"})
			return
		case errors.Is(err, ErrCartConflict):
			c.JSON(http.StatusConflict, gin.H{"msg": "Cart changed during checkout, please retry"})
			return
		case err != nil:
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		Broadcast(order)
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": order})
	}
}

// GET /api/orders
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		var orders []models.Order
		// Items keep their insertion order for display.
		if err := db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		products, err := models.ResolveProducts(db, models.OrderProductIDs(orders))
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		// Orders whose every item became unresolvable are dropped, same as
		// dangling cart items.
		views := []models.OrderView{}
		for _, o := range orders {
			if view, ok := models.SanitizeOrder(o, products); ok {
				views = append(views, view)
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": views})
	}
}
