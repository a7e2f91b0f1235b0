package repositories

import (
	"gudang/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Create persists a product together with its owned price as one unit.
	Create(product *models.Product) error
	// BulkCreate persists the products and their prices as two batched
	// inserts inside a single transaction; all-or-nothing.
	BulkCreate(products []*models.Product) error
	GetByID(id string) (*models.Product, error)
	// Update persists the product and, when present, its owned price row.
	Update(product *models.Product) error
	// AdjustAmount applies a relative quantity change, guarded so the stored
	// amount can never go below zero even under concurrent adjustments.
	AdjustAmount(id string, delta int) (*models.Product, error)
	// Delete removes the product and cascades to its owned price.
	Delete(id string) error
	// List returns the filtered, ordered page of products plus the total
	// count of products matching the filter.
	List(filter *models.ProductFilter) ([]models.Product, int64, error)
}
