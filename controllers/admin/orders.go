package adminControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/00harsha00/fixmyride/controllers/order"
	"github.com/00harsha00/fixmyride/models"
)

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// adminOrderView is a sanitized order with its buyer resolved.
type adminOrderView struct {
	models.OrderView
	User userSummary `json:"user"`
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		// Items keep their insertion order for display.
		if err := db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			Order("created_at DESC").Find(&orders).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		products, err := models.ResolveProducts(db, models.OrderProductIDs(orders))
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		userIDs := make([]string, 0, len(orders))
		for _, o := range orders {
			userIDs = append(userIDs, o.UserID)
		}
		var users []models.User
		if len(userIDs) > 0 {
			if err := db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
				c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
				return
			}
		}
		usersByID := make(map[string]models.User, len(users))
		for _, u := range users {
			usersByID[u.ID] = u
		}

		views := []adminOrderView{}
		for _, o := range orders {
			view, ok := models.SanitizeOrder(o, products)
			if !ok {
				continue
			}
			u := usersByID[o.UserID]
			views = append(views, adminOrderView{
				OrderView: view,
				User:      userSummary{ID: u.ID, Username: u.Username, Email: u.Email},
			})
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": views})
	}
}

// PATCH /api/admin/orders/:id
//
// Status is the only order field the admin surface may touch. Any status may
// replace any other; only enum membership is checked.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid status"})
			return
		}
		status := models.OrderStatus(input.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid status"})
			return
		}

		var order models.Order
		if err := db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"msg": "Order not found"})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		order.Status = status

		orderControllers.BroadcastStatus(order)
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": order})
	}
}
