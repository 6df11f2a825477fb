package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	authControllers "github.com/00harsha00/fixmyride/controllers/auth"
	"github.com/00harsha00/fixmyride/middleware"
)

// SetupAuthRoutes registers the public /api/auth endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.RateLimit(rate.Limit(2), 5))
	{
		authGroup.POST("/signup", authControllers.Signup(db))
		authGroup.POST("/login", authControllers.Login(db))
	}
}
