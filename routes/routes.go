package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/config"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public auth routes, rate limited.
	SetupAuthRoutes(r, db)

	// JWT-protected storefront routes (cart, wishlist, orders) and the
	// public catalog.
	SetupUserRoutes(r, db)

	// Admin console (JWT + role gate).
	SetupAdminRoutes(r, db)

	// Places/directions proxy and location ping.
	SetupPlacesRoutes(r, cfg)
}
