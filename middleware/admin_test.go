package middleware

import (
	"net/http"
	"net/http/httptest"
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

func newAdminTestRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	})
	r.GET("/admin-only", AdminOnly(db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func userRow(role string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password", "role", "created_at"}).
		AddRow("u1", "bob", "bob@example.com", "hash", role, time.Now())
}

func TestAdminOnlyNoIdentity(t *testing.T) {
	r := newAdminTestRouter(nil, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnlyRegularUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(userRow("user"))

	r := newAdminTestRouter(gdb, "u1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")
}

func TestAdminOnlyUnknownUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := newAdminTestRouter(gdb, "ghost")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnlyAdmin(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(userRow("admin"))

	r := newAdminTestRouter(gdb, "u1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
