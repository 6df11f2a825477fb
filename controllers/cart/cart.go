package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

type AddItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// sanitizedCart reloads the cart with items and projects it for the client,
// dropping references to deleted products without persisting the removal.
func sanitizedCart(db *gorm.DB, userID string) (models.CartView, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartView{UserID: userID, Items: []models.CartItemView{}}, nil
	} else if err != nil {
		return models.CartView{}, err
	}

	products, err := models.ResolveProducts(db, models.CartProductIDs(cart.Items))
	if err != nil {
		return models.CartView{}, err
	}
	return models.SanitizeCart(cart, products), nil
}

// bumpVersion advances the cart's optimistic-concurrency counter. Checkout
// only clears a cart whose version still matches the one it read, so every
// mutation has to move it.
func bumpVersion(db *gorm.DB, cartID uint) error {
	return db.Model(&models.Cart{}).Where("id = ?", cartID).
		Update("version", gorm.Expr("version + 1")).Error
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		view, err := sanitizedCart(db, userID)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": view})
	}
}

// POST /api/cart/add
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Product ID and quantity are required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"msg": "Product not found"})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// The cart is created lazily on first add.
			var cart models.Cart
			err := tx.Where("user_id = ?", userID).First(&cart).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				cart = models.Cart{UserID: userID}
				if err := tx.Create(&cart).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			// Duplicate adds merge into the existing row.
			var item models.CartItem
			err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				item = models.CartItem{CartID: cart.ID, ProductID: input.ProductID, Quantity: input.Quantity}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			} else {
				item.Quantity += input.Quantity
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			}

			return bumpVersion(tx, cart.ID)
		})
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		view, err := sanitizedCart(db, userID)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": view})
	}
}

// DELETE /api/cart/remove/:productId
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid product ID"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"msg": "Cart not found"})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		// Removing an absent item is a no-op, not an error.
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return bumpVersion(tx, cart.ID)
		})
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		view, err := sanitizedCart(db, userID)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": view})
	}
}
