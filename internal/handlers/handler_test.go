package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docuplain/docuplain-backend/internal/config"
	"github.com/docuplain/docuplain-backend/internal/middleware"
	"github.com/docuplain/docuplain-backend/internal/models"
	"github.com/docuplain/docuplain-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "correct-horse-battery"

// envelope mirrors dto.Response with an untyped data map for assertions.
type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
}

type testEnv struct {
	app  *fiber.App
	db   *gorm.DB
	cfg  *config.Config
	auth *services.AuthService
}

// newTestEnv wires the real services and handlers over an in-memory DB.
// Rate limiters are left out so tests can hammer the endpoints.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Upload{}))

	cfg := &config.Config{
		JWTSecret:       "handler-test-secret",
		JWTAccessExpiry: time.Hour,
	}

	authService := services.NewAuthService(db, cfg)
	quotaService := services.NewQuotaService(db)
	profileService := services.NewProfileService(db, quotaService)
	uploadService := services.NewUploadService(db, quotaService)

	authHandler := NewAuthHandler(authService, profileService)
	fileHandler := NewFileHandler(uploadService)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/profile", middleware.JWTProtected(cfg), authHandler.GetProfile)
	api.Put("/auth/update-profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)
	api.Delete("/auth/profile", middleware.JWTProtected(cfg), authHandler.DeactivateAccount)
	files := api.Group("/files", middleware.JWTProtected(cfg))
	files.Post("/upload", fileHandler.Upload)
	files.Get("/stats", fileHandler.Stats)
	files.Get("/uploads", fileHandler.ListUploads)

	return &testEnv{app: app, db: db, cfg: cfg, auth: authService}
}

func (e *testEnv) seedUser(t *testing.T, mutate func(*models.User)) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:               uuid.New(),
		FullName:         "Jamie Byrne",
		Email:            "jamie@example.com",
		Password:         string(hash),
		Plan:             models.PlanFree,
		MonthlyFileLimit: models.PlanFree.MonthlyFileLimit(),
		LastLimitReset:   time.Now().UTC(),
		IsEmailVerified:  true,
		IsActive:         true,
	}
	if mutate != nil {
		mutate(user)
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := e.auth.GenerateAccessToken(user)
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func multipartRequest(t *testing.T, target, token, field, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.7 test payload"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()

	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}
