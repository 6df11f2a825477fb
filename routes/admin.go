package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/00harsha00/fixmyride/controllers/admin"
	orderControllers "github.com/00harsha00/fixmyride/controllers/order"
	"github.com/00harsha00/fixmyride/middleware"
)

// SetupAdminRoutes registers all /api/admin endpoints behind the JWT check
// and the role gate.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.AdminOnly(db))
	{
		adminGroup.GET("/users", adminControllers.GetAllUsers(db))
		adminGroup.DELETE("/users/:id", adminControllers.DeleteUser(db))

		adminGroup.GET("/orders", adminControllers.GetAllOrders(db))
		adminGroup.PATCH("/orders/:id", adminControllers.UpdateOrderStatus(db))

		adminGroup.GET("/products", adminControllers.GetProducts(db))
		adminGroup.POST("/products", adminControllers.CreateProduct(db))
		adminGroup.PATCH("/products/:id", adminControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", adminControllers.DeleteProduct(db))
		adminGroup.GET("/products/export", adminControllers.ExportProducts(db))

		adminGroup.GET("/payments", adminControllers.GetPayments(db))

		// Live order feed for the console.
		adminGroup.GET("/orders/ws", orderControllers.FeedHandler)
	}
}
