package repositories

import (
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductTypeRepository is a GORM implementation of ProductTypeRepository.
type GORMProductTypeRepository struct {
	db *gorm.DB
}

// NewGORMProductTypeRepository creates a new instance of GORMProductTypeRepository.
func NewGORMProductTypeRepository(db *gorm.DB) *GORMProductTypeRepository {
	return &GORMProductTypeRepository{
		db: db,
	}
}

// GetAll retrieves all product types ordered by name.
func (r *GORMProductTypeRepository) GetAll() ([]models.ProductType, error) {
	var types []models.ProductType
	if err := r.db.Order("name").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to get all product types: %w", err)
	}
	return types, nil
}

// GetByID retrieves a single product type by its ID.
func (r *GORMProductTypeRepository) GetByID(id string) (*models.ProductType, error) {
	var productType models.ProductType
	if err := r.db.First(&productType, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product type with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product type by ID %s: %w", id, err)
	}
	return &productType, nil
}

// Create creates a new product type.
func (r *GORMProductTypeRepository) Create(productType *models.ProductType) error {
	if productType.ID == "" {
		productType.ID = uuid.New().String()
	}
	if err := r.db.Create(productType).Error; err != nil {
		return fmt.Errorf("failed to create product type: %w", err)
	}
	return nil
}

// Update updates an existing product type.
func (r *GORMProductTypeRepository) Update(productType *models.ProductType) error {
	res := r.db.Save(productType)
	if res.Error != nil {
		return fmt.Errorf("failed to update product type: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product type with ID %s: %w", productType.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a product type. Types still referenced by products are
// protected: the check and the delete run in one transaction so a product
// cannot slip in between them.
func (r *GORMProductTypeRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var referencing int64
		if err := tx.Model(&models.Product{}).Where("type_id = ?", id).Count(&referencing).Error; err != nil {
			return fmt.Errorf("failed to count products referencing type %s: %w", id, err)
		}
		if referencing > 0 {
			return fmt.Errorf("product type %s is referenced by %d product(s): %w", id, referencing, ErrTypeInUse)
		}

		res := tx.Delete(&models.ProductType{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product type: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product type with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}
