package handlers

import (
	"log"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	validate := validator.New()
	if err := models.RegisterValidations(validate); err != nil {
		log.Fatalf("Failed to register custom validations: %v", err)
	}
	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Post("/bulk-create", h.HandleBulkCreate)
	productRoutes.Patch("/:id/update-amount", h.HandleUpdateAmount)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Patch("/:id", h.HandlePatchProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	// Full replace is not part of the API surface.
	productRoutes.Put("/", handleMethodNotAllowed)
	productRoutes.Put("/:id", handleMethodNotAllowed)
}

// HandleListProducts returns a filtered, ordered, paginated product listing.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter, err := models.ParseProductFilter(c.Queries())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
	}

	products, total, err := h.service.ListProducts(filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return handleServiceError(c, "Could not retrieve products", err)
	}

	return c.JSON(models.ProductListResponse{
		Count:   total,
		Results: products,
	})
}

// HandleGetProductByID retrieves a single product including its nested price.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return handleServiceError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product together with its owned price.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return handleValidationError(c, err)
	}

	product, err := h.service.CreateProduct(&req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return handleServiceError(c, "Could not create product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleBulkCreate creates many products in one request. The operation is
// atomic: either every product and its price land, or none do.
func (h *ProductHandler) HandleBulkCreate(c *fiber.Ctx) error {
	var req models.BulkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing bulk create request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if len(req.Products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one product is required",
		})
	}

	products, err := h.service.BulkCreateProducts(req.Products)
	if err != nil {
		log.Printf("Error bulk creating products: %v", err)
		return handleServiceError(c, "Could not bulk create products", err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.BulkCreateResponse{Products: products})
}

// HandlePatchProduct applies a partial update. The amount field is not
// settable through this path; only update-amount changes it.
func (h *ProductHandler) HandlePatchProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var patch models.ProductPatchRequest
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing patch product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(patch); err != nil {
		return handleValidationError(c, err)
	}

	product, err := h.service.UpdateProduct(productID, &patch)
	if err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		return handleServiceError(c, "Could not update product", err)
	}

	return c.JSON(product)
}

// HandleUpdateAmount applies a relative amount change (+50, -100 and so on).
func (h *ProductHandler) HandleUpdateAmount(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req models.AmountDeltaRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update amount request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return handleValidationError(c, err)
	}

	product, err := h.service.AdjustAmount(productID, *req.AmountDelta)
	if err != nil {
		log.Printf("Error adjusting amount for product %s: %v", productID, err)
		return handleServiceError(c, "Could not adjust product amount", err)
	}

	return c.JSON(product)
}

// HandleDeleteProduct deletes a product and its owned price.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return handleServiceError(c, "Could not delete product", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
