package adminControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

type CreateProductInput struct {
	Name            string   `json:"name" binding:"required"`
	OriginalPrice   float64  `json:"originalPrice" binding:"required"`
	DiscountedPrice float64  `json:"discountedPrice" binding:"required"`
	Discount        float64  `json:"discount" binding:"required"`
	Rating          *float64 `json:"rating"`
	Reviews         *int     `json:"reviews"`
	ImageURL        string   `json:"imageUrl" binding:"required"`
	Category        string   `json:"category"`
}

type UpdateProductInput struct {
	Name            *string  `json:"name"`
	OriginalPrice   *float64 `json:"originalPrice"`
	DiscountedPrice *float64 `json:"discountedPrice"`
	Discount        *float64 `json:"discount"`
	Rating          *float64 `json:"rating"`
	Reviews         *int     `json:"reviews"`
	ImageURL        *string  `json:"imageUrl"`
	Category        *string  `json:"category"`
}

// GET /api/admin/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": products})
	}
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing required fields"})
			return
		}

		product := models.Product{
			Name:            input.Name,
			OriginalPrice:   input.OriginalPrice,
			DiscountedPrice: input.DiscountedPrice,
			Discount:        input.Discount,
			Rating:          5,
			Reviews:         1,
			ImageURL:        input.ImageURL,
			Category:        "Auto parts",
		}
		if input.Rating != nil {
			product.Rating = *input.Rating
		}
		if input.Reviews != nil {
			product.Reviews = *input.Reviews
		}
		if input.Category != "" {
			product.Category = input.Category
		}

		if err := db.Create(&product).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": product})
	}
}

// PATCH /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"msg": "Product not found"})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid input"})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.OriginalPrice != nil {
			updates["original_price"] = *input.OriginalPrice
		}
		if input.DiscountedPrice != nil {
			updates["discounted_price"] = *input.DiscountedPrice
		}
		if input.Discount != nil {
			updates["discount"] = *input.Discount
		}
		if input.Rating != nil {
			updates["rating"] = *input.Rating
		}
		if input.Reviews != nil {
			updates["reviews"] = *input.Reviews
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": product})
	}
}

// DELETE /api/admin/products/:id
//
// Carts, orders and wishlists that reference the product keep their rows;
// reads sanitize the dangling references instead.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"msg": "Product not found"})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Product deleted"})
	}
}
