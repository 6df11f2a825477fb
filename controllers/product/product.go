package productControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

// ProductView is the storefront projection the landing pages consume: the
// display price is the original price, with the discount fields alongside.
type ProductView struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Discount        float64 `json:"discount"`
	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// FormatProducts builds the storefront projection.
func FormatProducts(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		price := p.DiscountedPrice
		if price == 0 {
			price = p.OriginalPrice
		}
		views = append(views, ProductView{
			ID:              p.ID,
			Name:            p.Name,
			Price:           p.OriginalPrice,
			Discount:        p.Discount,
			Rating:          p.Rating,
			Reviews:         p.Reviews,
			Image:           p.ImageURL,
			Category:        p.Category,
			DiscountedPrice: price,
		})
	}
	return views
}

// GET /api/products?category=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})
		if category := c.Query("category"); category != "" {
			query = query.Where("LOWER(category) = ?", strings.ToLower(category))
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch products"})
			return
		}
		if len(products) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"msg": "No products found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "data": FormatProducts(products)})
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": product})
	}
}
