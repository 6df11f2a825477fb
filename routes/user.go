package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/00harsha00/fixmyride/controllers/cart"
	orderControllers "github.com/00harsha00/fixmyride/controllers/order"
	productControllers "github.com/00harsha00/fixmyride/controllers/product"
	wishlistControllers "github.com/00harsha00/fixmyride/controllers/wishlist"
	"github.com/00harsha00/fixmyride/middleware"
)

// SetupUserRoutes registers the storefront: the public catalog plus the
// JWT-protected cart, wishlist and order endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// Catalog browsing needs no account.
	r.GET("/api/products", productControllers.GetProducts(db))
	r.GET("/api/products/:id", productControllers.GetProductByID(db))

	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/add", cartControllers.AddItem(db))
		cartGroup.DELETE("/remove/:productId", cartControllers.RemoveItem(db))
	}

	wishlistGroup := r.Group("/api/wishlist")
	wishlistGroup.Use(middleware.ValidateToken)
	{
		wishlistGroup.GET("", wishlistControllers.GetWishlist(db))
		wishlistGroup.POST("/add", wishlistControllers.AddItem(db))
		wishlistGroup.DELETE("/remove/:productId", wishlistControllers.RemoveItem(db))
	}

	orderGroup := r.Group("/api/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.GET("", orderControllers.ListOrders(db))
		orderGroup.POST("", orderControllers.CreateOrder(db))
	}
}
