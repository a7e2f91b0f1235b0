package services

import (
	"errors"
	"fmt"
	"log"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/rabbitmq"
)

// ErrTypeNotFound is returned when a create or patch references a product type
// that does not exist. It is a payload problem, not a missing resource, so
// handlers map it to 400 rather than 404.
var ErrTypeNotFound = errors.New("referenced product type does not exist")

// ProductService handles every write that touches more than one entity or that
// must enforce an invariant the store does not express on its own.
type ProductService struct {
	repo     repositories.ProductRepository
	typeRepo repositories.ProductTypeRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, typeRepo repositories.ProductTypeRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		typeRepo: typeRepo,
		mqClient: mqClient,
	}
}

// GetProductByID retrieves a single product with its nested price.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// ListProducts returns the filtered page of products and the total match count.
func (s *ProductService) ListProducts(filter *models.ProductFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// CreateProduct validates the request, resolves the type reference and persists
// the product together with its owned price as one unit.
func (s *ProductService) CreateProduct(req *models.ProductCreateRequest) (*models.Product, error) {
	if err := models.ValidateBarcode(req.Barcode); err != nil {
		return nil, err
	}
	if err := s.ensureTypeExists(req.TypeID); err != nil {
		return nil, err
	}

	product := buildProduct(req)
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventProductCreated, map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
		"barcode":   product.Barcode,
		"amount":    product.Amount,
	})

	return product, nil
}

// BulkCreateProducts persists many products at once: two batched inserts
// (products, then positionally paired prices) inside one transaction, so a
// failure on any row leaves nothing behind. Unlike single create, only the
// barcode format is checked per item; other conflicts surface from the store
// as a batch failure. Output order matches input order.
func (s *ProductService) BulkCreateProducts(reqs []models.ProductCreateRequest) ([]models.Product, error) {
	products := make([]*models.Product, 0, len(reqs))
	for i := range reqs {
		if err := models.ValidateBarcode(reqs[i].Barcode); err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		products = append(products, buildProduct(&reqs[i]))
	}

	if err := s.repo.BulkCreate(products); err != nil {
		return nil, err
	}

	created := make([]models.Product, 0, len(products))
	for _, product := range products {
		created = append(created, *product)
		s.publishEvent(rabbitmq.EventProductCreated, map[string]interface{}{
			"productID": product.ID,
			"name":      product.Name,
			"barcode":   product.Barcode,
			"amount":    product.Amount,
		})
	}
	return created, nil
}

// UpdateProduct applies a partial update. The amount is immutable through this
// path; a nested price patch updates the owned price row in place rather than
// replacing it. date_updated is refreshed as a side effect of the write.
func (s *ProductService) UpdateProduct(id string, patch *models.ProductPatchRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Barcode != nil {
		if err := models.ValidateBarcode(*patch.Barcode); err != nil {
			return nil, err
		}
		product.Barcode = *patch.Barcode
	}
	if patch.TypeID != nil {
		if err := s.ensureTypeExists(*patch.TypeID); err != nil {
			return nil, err
		}
		product.TypeID = *patch.TypeID
	}
	if patch.IsActive != nil {
		product.IsActive = *patch.IsActive
	}
	if patch.Price != nil {
		product.Price.Price = patch.Price.Price
		if patch.Price.Currency != "" {
			product.Price.Currency = patch.Price.Currency
		}
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// AdjustAmount applies a relative quantity change (+50, -100 and so on). The
// pre-check produces the descriptive rejection message; the repository's
// guarded update is what actually closes the race under concurrent deltas.
func (s *ProductService) AdjustAmount(id string, delta int) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := models.ApplyAmountDelta(product.Amount, delta); err != nil {
		return nil, fmt.Errorf("%v: %w", err, repositories.ErrNegativeAmount)
	}

	updated, err := s.repo.AdjustAmount(id, delta)
	if err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventAmountAdjusted, map[string]interface{}{
		"productID": updated.ID,
		"delta":     delta,
		"amount":    updated.Amount,
	})

	return updated, nil
}

// DeleteProduct deletes a product; its owned price goes with it.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// ensureTypeExists resolves a type reference arriving in a request body.
func (s *ProductService) ensureTypeExists(typeID string) error {
	if _, err := s.typeRepo.GetByID(typeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product type %s: %w", typeID, ErrTypeNotFound)
		}
		return err
	}
	return nil
}

// publishEvent emits an inventory event. Publishing is best-effort: a broker
// failure is logged and never fails the request.
func (s *ProductService) publishEvent(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishInventoryEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

// buildProduct turns a create request into the persistent model, applying the
// currency default.
func buildProduct(req *models.ProductCreateRequest) *models.Product {
	currency := req.Price.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}
	return &models.Product{
		Name:     req.Name,
		Amount:   req.Amount,
		Barcode:  req.Barcode,
		TypeID:   req.TypeID,
		IsActive: true,
		Price: &models.ProductPrice{
			Price:    req.Price.Price,
			Currency: currency,
		},
	}
}
