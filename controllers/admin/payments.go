package adminControllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

// PaymentView simulates a payment record from an order. There is no payment
// processor in this system; the admin panel shows this projection instead.
type PaymentView struct {
	OrderID       uint               `json:"orderId"`
	User          userSummary        `json:"user"`
	TotalAmount   float64            `json:"totalAmount"`
	Status        models.OrderStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	PaymentID     string             `json:"paymentId"`
	PaymentMethod string             `json:"paymentMethod"`
	PaymentStatus string             `json:"paymentStatus"`
}

// GET /api/admin/payments
func GetPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
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

		payments := []PaymentView{}
		for _, o := range orders {
			u := usersByID[o.UserID]
			paymentStatus := "Pending"
			if o.Status == models.OrderStatusDelivered {
				paymentStatus = "Completed"
			}
			payments = append(payments, PaymentView{
				OrderID:       o.ID,
				User:          userSummary{ID: u.ID, Username: u.Username, Email: u.Email},
				TotalAmount:   o.TotalAmount,
				Status:        o.Status,
				CreatedAt:     o.CreatedAt,
				PaymentID:     fmt.Sprintf("PAY-%08d", o.ID),
				PaymentMethod: "Credit Card",
				PaymentStatus: paymentStatus,
			})
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": payments})
	}
}
