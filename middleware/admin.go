package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

// AdminOnly gates the admin surface. It runs after ValidateToken and loads
// the caller to check the role column, so a revoked admin is locked out as
// soon as the row changes.
func AdminOnly(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"msg": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
