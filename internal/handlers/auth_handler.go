package handlers

import (
	"errors"
	"log/slog"

	"github.com/docuplain/docuplain-backend/internal/dto"
	"github.com/docuplain/docuplain-backend/internal/middleware"
	"github.com/docuplain/docuplain-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
}

func NewAuthHandler(authService *services.AuthService, profileService *services.ProfileService) *AuthHandler {
	return &AuthHandler{authService: authService, profileService: profileService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid request body")
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return fail(c, fiber.StatusBadRequest, "Validation Error", ve.Error())
		case errors.Is(err, services.ErrEmailTaken):
			return fail(c, fiber.StatusConflict, "User already exists", err.Error())
		default:
			slog.Error("registration failed", "error", err)
			return fail(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred during registration")
		}
	}

	return success(c, fiber.StatusCreated, "Registration successful!", resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid request body")
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return fail(c, fiber.StatusBadRequest, "Validation Error", ve.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			return fail(c, fiber.StatusUnauthorized, "Invalid credentials", "Invalid email or password")
		case errors.Is(err, services.ErrAccountDeactivated):
			return fail(c, fiber.StatusForbidden, "Account deactivated", "Your account has been deactivated. Please contact support.")
		default:
			slog.Error("login failed", "error", err)
			return fail(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred during login")
		}
	}

	return success(c, fiber.StatusOK, "Login successful", resp)
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized", "User not authenticated")
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "User not found", "User account not found")
		}
		slog.Error("profile fetch failed", "error", err, "user_id", userID.String())
		return fail(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred during profile retrieval")
	}

	return success(c, fiber.StatusOK, "Profile retrieved successfully", profile)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized", "User not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation error", "Invalid request body")
	}

	resp, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return fail(c, fiber.StatusBadRequest, "Validation error", ve.Error())
		case errors.Is(err, services.ErrInvalidCurrentPassword):
			return fail(c, fiber.StatusBadRequest, "Invalid current password", "Current password is incorrect")
		case errors.Is(err, services.ErrUserNotFound):
			return fail(c, fiber.StatusNotFound, "User not found", "User account not found")
		default:
			slog.Error("profile update failed", "error", err, "user_id", userID.String())
			return fail(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred during profile update")
		}
	}

	return success(c, fiber.StatusOK, "Profile updated successfully", resp)
}

func (h *AuthHandler) DeactivateAccount(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized", "User not authenticated")
	}

	var req dto.DeactivateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation error", "Invalid request body")
	}

	if err := h.profileService.Deactivate(userID, req.Password); err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return fail(c, fiber.StatusBadRequest, "Validation error", ve.Error())
		case errors.Is(err, services.ErrInvalidCurrentPassword):
			return fail(c, fiber.StatusBadRequest, "Invalid password", "Password is incorrect")
		case errors.Is(err, services.ErrUserNotFound):
			return fail(c, fiber.StatusNotFound, "User not found", "User account not found")
		default:
			slog.Error("account deactivation failed", "error", err, "user_id", userID.String())
			return fail(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred during account deactivation")
		}
	}

	return success(c, fiber.StatusOK, "Account deactivated successfully", nil)
}
