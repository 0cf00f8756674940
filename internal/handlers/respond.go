package handlers

import (
	"github.com/docuplain/docuplain-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func fail(c *fiber.Ctx, status int, message, detail string) error {
	return c.Status(status).JSON(dto.Response{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
