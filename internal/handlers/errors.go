package handlers

import (
	"errors"
	"fmt"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// handleServiceError maps a service or repository error to an HTTP response.
// Path lookups that miss map to 404; payload problems (bad barcode, negative
// resulting amount, dangling type reference) map to 400; store-level conflicts
// (duplicate barcode, type still in use) map to 409.
func handleServiceError(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidBarcode),
		errors.Is(err, repositories.ErrNegativeAmount),
		errors.Is(err, services.ErrTypeNotFound):
		status = fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrTypeInUse),
		errors.Is(err, gorm.ErrDuplicatedKey):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// handleValidationError turns validator failures into a field-keyed 400 body.
func handleValidationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"error":   err.Error(),
	})
}

// handleMethodNotAllowed rejects full-replace updates: resources here support
// partial updates only, so PUT answers 405 regardless of body.
func handleMethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
		"message": "Method Not Allowed",
	})
}
