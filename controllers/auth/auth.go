package authControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

type SignupInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// userResponse is what the client gets back; the password hash never leaves
// the server.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func signToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// POST /api/auth/signup
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "username, email and password are required"})
			return
		}

		var existing models.User
		if err := db.First(&existing, "username = ?", input.Username).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Username already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		if err := db.First(&existing, "email = ?", input.Email).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Email already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Username: input.Username,
			Email:    input.Email,
			Password: string(hash),
			Role:     models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		token, err := signToken(user.ID)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  userResponse{ID: user.ID, Username: user.Username, Email: user.Email, Role: user.Role},
			"token": token,
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "usernameOrEmail and password are required"})
			return
		}

		var user models.User
		err := db.First(&user, "username = ? OR email = ?", input.UsernameOrEmail, input.UsernameOrEmail).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
			return
		} else if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
			return
		}

		token, err := signToken(user.ID)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  userResponse{ID: user.ID, Username: user.Username, Email: user.Email, Role: user.Role},
			"token": token,
		})
	}
}
