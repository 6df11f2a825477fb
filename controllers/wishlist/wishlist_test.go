package wishlistControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func newWishlistRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	})
	r.GET("/api/wishlist", GetWishlist(db))
	r.POST("/api/wishlist/add", AddItem(db))
	r.DELETE("/api/wishlist/remove/:productId", RemoveItem(db))
	return r
}

func TestWishlistAddValidation(t *testing.T) {
	r := newWishlistRouter(nil, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/add", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product ID is required")
}

func TestWishlistAddProductMissing(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := newWishlistRouter(gdb, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/add", strings.NewReader(`{"productId":99}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWishlistAddDuplicate(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Brake pads"))
	mock.ExpectQuery(`SELECT (.+) FROM "wishlist_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "created_at"}).
			AddRow(1, "user-1", 5, time.Now()))

	r := newWishlistRouter(gdb, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/add", strings.NewReader(`{"productId":5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already in wishlist")
}

func TestWishlistRemoveAbsent(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "wishlist_items"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	r := newWishlistRouter(gdb, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/wishlist/remove/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found in wishlist")
}

func TestWishlistGetDropsDanglingProducts(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "wishlist_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "created_at"}).
			AddRow(1, "user-1", 5, time.Now()).
			AddRow(2, "user-1", 6, time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Brake pads"))

	r := newWishlistRouter(gdb, "user-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wishlist", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Brake pads")
	assert.NotContains(t, w.Body.String(), `"productId":6`)
}
