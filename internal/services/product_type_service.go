package services

import (
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// ProductTypeService handles business logic related to product types.
type ProductTypeService struct {
	repo repositories.ProductTypeRepository
}

// NewProductTypeService creates a new ProductTypeService.
func NewProductTypeService(repo repositories.ProductTypeRepository) *ProductTypeService {
	return &ProductTypeService{
		repo: repo,
	}
}

// GetAllProductTypes retrieves all product types.
func (s *ProductTypeService) GetAllProductTypes() ([]models.ProductType, error) {
	return s.repo.GetAll()
}

// GetProductTypeByID retrieves a single product type by its ID.
func (s *ProductTypeService) GetProductTypeByID(id string) (*models.ProductType, error) {
	return s.repo.GetByID(id)
}

// CreateProductType creates a new product type.
func (s *ProductTypeService) CreateProductType(req *models.ProductTypeCreateRequest) (*models.ProductType, error) {
	productType := &models.ProductType{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(productType); err != nil {
		return nil, err
	}
	return productType, nil
}

// UpdateProductType applies a partial update to an existing product type.
func (s *ProductTypeService) UpdateProductType(id string, patch *models.ProductTypePatchRequest) (*models.ProductType, error) {
	productType, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		productType.Name = *patch.Name
	}
	if patch.Description != nil {
		productType.Description = *patch.Description
	}

	if err := s.repo.Update(productType); err != nil {
		return nil, err
	}
	return productType, nil
}

// DeleteProductType deletes a product type. Deletion is blocked while any
// product still references the type.
func (s *ProductTypeService) DeleteProductType(id string) error {
	return s.repo.Delete(id)
}
