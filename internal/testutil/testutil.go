// Package testutil wires an in-memory store and app instance for handler
// tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockcount-backend/internal/auth"
	"stockcount-backend/internal/config"
	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"
	"stockcount-backend/internal/router"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestConfig() *config.Config {
	return &config.Config{
		HTTPPort:      "0",
		JWTSecret:     strings.Repeat("s", 32),
		CORSOrigins:   "http://localhost:5173",
		AdminPassword: "Admin@2025",
	}
}

// SetupDB swaps the global DB for an in-memory sqlite instance.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db
	return db
}

// NewApp builds the full route table over a fresh in-memory store.
func NewApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	SetupDB(t)
	cfg := TestConfig()
	return router.New(cfg), cfg
}

// CreateUser inserts a user with the given role and returns it with a valid
// token.
func CreateUser(t *testing.T, cfg *config.Config, userName string, role models.UserRole) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		UserName:     userName,
		PasswordHash: string(hash),
		FullName:     "Test " + userName,
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := auth.GenerateToken(cfg.JWTSecret, &user)
	require.NoError(t, err)
	return &user, token
}

// Request runs a JSON request against the app and decodes the response body
// into out (when out is non-nil).
func Request(t *testing.T, app *fiber.App, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp
}
