package adminControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

func newAdminRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/orders", GetAllOrders(db))
	r.PATCH("/api/admin/orders/:id", UpdateOrderStatus(db))
	return r
}

func patchStatus(r *gin.Engine, id, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateOrderStatusRejectsUnknownValues(t *testing.T) {
	// The db must never be touched when the enum check fails.
	r := newAdminRouter(nil)

	for _, body := range []string{
		`{}`,
		`{"status":""}`,
		`{"status":"Refunded"}`,
		`{"status":"pending"}`, // case sensitive
		`{"status":"Delivered "}`,
	} {
		w := patchStatus(r, "1", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.Contains(t, w.Body.String(), "Invalid status")
	}
}

func TestUpdateOrderStatusOrderMissing(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := newAdminRouter(gdb)

	w := patchStatus(r, "42", `{"status":"Shipped"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestGetAllOrdersEmpty(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "status"}))

	r := newAdminRouter(gdb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":[]}`, w.Body.String())
}

func TestGetAllOrdersItemsInInsertionOrder(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "status"}).
			AddRow(7, "user-1", 100, "Pending"))
	// Items must come back sorted by id, not in heap order.
	mock.ExpectQuery(`SELECT (.+) FROM "order_items" WHERE (.+) ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(70, 7, 5, 2, 50))
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "discounted_price"}).
			AddRow(5, "Brake pads", 50))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow("user-1", "bob", "bob@example.com"))

	r := newAdminRouter(gdb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
	assert.Contains(t, w.Body.String(), `"productId":5`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
