package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/docuplain/docuplain-backend/internal/config"
	"github.com/docuplain/docuplain-backend/internal/dto"
	"github.com/docuplain/docuplain-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthData, error) {
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return nil, validationError("full name, email, and password are required")
	}
	if len(req.Password) < 8 {
		return nil, validationError("password must be at least 8 characters long")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:                 uuid.New(),
		FullName:           req.FullName,
		Email:              email,
		Password:           string(hash),
		Plan:               models.PlanFree,
		MonthlyFileLimit:   models.PlanFree.MonthlyFileLimit(),
		FilesUploadedCount: 0,
		LastLimitReset:     time.Now().UTC(),
		IsEmailVerified:    true,
		IsActive:           true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique index is the last word: a racing insert between the
		// existence check and here surfaces as a duplicated key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.GenerateAccessToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthData{
		AccessToken: token,
		User:        dto.NewUserSummary(&user),
	}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthData, error) {
	if req.Email == "" || req.Password == "" {
		return nil, validationError("email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateAccessToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthData{
		AccessToken: token,
		User:        dto.NewUserSummary(&user),
	}, nil
}

// GenerateAccessToken mints a signed HS256 token binding identity, email,
// and plan tier.
func (s *AuthService) GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"plan":  string(user.Plan),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
