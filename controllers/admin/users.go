package adminControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "username", "email", "role", "created_at").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": users})
	}
}

// DELETE /api/admin/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		if user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"msg": "Cannot delete admin users"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "User deleted"})
	}
}
