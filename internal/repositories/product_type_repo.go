package repositories

import (
	"gudang/internal/models"
)

// ProductTypeRepository defines the interface for product type data access.
type ProductTypeRepository interface {
	GetAll() ([]models.ProductType, error)
	GetByID(id string) (*models.ProductType, error)
	Create(productType *models.ProductType) error
	Update(productType *models.ProductType) error
	// Delete fails with ErrTypeInUse while any product references the type.
	Delete(id string) error
}
