package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

type AddWishlistInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

// wishlistEntry pairs a saved item with its resolved product.
type wishlistEntry struct {
	models.WishlistItem
	Product models.Product `json:"product"`
}

// GET /api/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		var items []models.WishlistItem
		if err := db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		ids := make([]uint, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}
		products, err := models.ResolveProducts(db, ids)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		entries := []wishlistEntry{}
		for _, item := range items {
			product, ok := products[item.ProductID]
			if !ok {
				continue
			}
			entries = append(entries, wishlistEntry{WishlistItem: item, Product: product})
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": entries})
	}
}

// POST /api/wishlist/add
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			return
		}

		var input AddWishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Product ID is required"})
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

		var existing models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Product already in wishlist"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		item := models.WishlistItem{UserID: userID, ProductID: input.ProductID}
		if err := db.Create(&item).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": item})
	}
}

// DELETE /api/wishlist/remove/:productId
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

		res := db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.WishlistItem{})
		if res.Error != nil {
			c.Error(res.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Product not found in wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Removed from wishlist"})
	}
}
