package services

import (
	"testing"
	"time"

	"github.com/docuplain/docuplain-backend/internal/config"
	"github.com/docuplain/docuplain-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "correct-horse-battery"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A second connection to :memory: would see a different database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Upload{}))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

func seedUser(t *testing.T, db *gorm.DB, mutate func(*models.User)) *models.User {
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
	require.NoError(t, db.Create(user).Error)
	return user
}

func reloadUser(t *testing.T, db *gorm.DB, id uuid.UUID) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", id).Error)
	return &user
}
