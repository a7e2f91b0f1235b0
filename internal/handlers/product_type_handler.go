package handlers

import (
	"log"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductTypeHandler handles HTTP requests for product types.
type ProductTypeHandler struct {
	service  *services.ProductTypeService
	validate *validator.Validate
}

// NewProductTypeHandler creates a new ProductTypeHandler.
func NewProductTypeHandler(service *services.ProductTypeService) *ProductTypeHandler {
	return &ProductTypeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product type routes with the Fiber app.
func (h *ProductTypeHandler) RegisterRoutes(router fiber.Router) {
	typeRoutes := router.Group("/product-types")
	typeRoutes.Get("/", h.HandleListProductTypes)
	typeRoutes.Post("/", h.HandleCreateProductType)
	typeRoutes.Get("/:id", h.HandleGetProductTypeByID)
	typeRoutes.Patch("/:id", h.HandlePatchProductType)
	typeRoutes.Delete("/:id", h.HandleDeleteProductType)
	// Full replace is not part of the API surface.
	typeRoutes.Put("/", handleMethodNotAllowed)
	typeRoutes.Put("/:id", handleMethodNotAllowed)
}

// HandleListProductTypes retrieves all product types.
func (h *ProductTypeHandler) HandleListProductTypes(c *fiber.Ctx) error {
	types, err := h.service.GetAllProductTypes()
	if err != nil {
		log.Printf("Error getting all product types: %v", err)
		return handleServiceError(c, "Could not retrieve product types", err)
	}
	return c.JSON(types)
}

// HandleGetProductTypeByID retrieves a single product type.
func (h *ProductTypeHandler) HandleGetProductTypeByID(c *fiber.Ctx) error {
	typeID := c.Params("id")
	productType, err := h.service.GetProductTypeByID(typeID)
	if err != nil {
		log.Printf("Error getting product type by ID %s: %v", typeID, err)
		return handleServiceError(c, "Could not retrieve product type", err)
	}
	return c.JSON(productType)
}

// HandleCreateProductType creates a new product type.
func (h *ProductTypeHandler) HandleCreateProductType(c *fiber.Ctx) error {
	var req models.ProductTypeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product type request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return handleValidationError(c, err)
	}

	productType, err := h.service.CreateProductType(&req)
	if err != nil {
		log.Printf("Error creating product type: %v", err)
		return handleServiceError(c, "Could not create product type", err)
	}

	return c.Status(fiber.StatusCreated).JSON(productType)
}

// HandlePatchProductType applies a partial update to a product type.
func (h *ProductTypeHandler) HandlePatchProductType(c *fiber.Ctx) error {
	typeID := c.Params("id")

	var patch models.ProductTypePatchRequest
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing patch product type request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(patch); err != nil {
		return handleValidationError(c, err)
	}

	productType, err := h.service.UpdateProductType(typeID, &patch)
	if err != nil {
		log.Printf("Error updating product type %s: %v", typeID, err)
		return handleServiceError(c, "Could not update product type", err)
	}

	return c.JSON(productType)
}

// HandleDeleteProductType deletes a product type. Types still referenced by
// products are protected and answer with a conflict.
func (h *ProductTypeHandler) HandleDeleteProductType(c *fiber.Ctx) error {
	typeID := c.Params("id")
	if err := h.service.DeleteProductType(typeID); err != nil {
		log.Printf("Error deleting product type %s: %v", typeID, err)
		return handleServiceError(c, "Could not delete product type", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
