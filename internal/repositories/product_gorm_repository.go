package repositories

import (
	"fmt"
	"strings"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create persists the product and its owned price in one transaction. The two
// inserts are explicit: if the price insert fails, the product insert is
// rolled back and no dangling product can be observed.
func (r *GORMProductRepository) Create(product *models.Product) error {
	assignProductIDs(product)
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		if err := tx.Create(product.Price).Error; err != nil {
			return fmt.Errorf("failed to create product price: %w", err)
		}
		return nil
	})
}

// BulkCreate inserts all products in one batched statement, then all prices in
// a second one, paired positionally. The surrounding transaction makes the
// whole bulk operation atomic: a conflict on any row rolls back everything.
func (r *GORMProductRepository) BulkCreate(products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}
	prices := make([]*models.ProductPrice, 0, len(products))
	for _, product := range products {
		assignProductIDs(product)
		prices = append(prices, product.Price)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&products).Error; err != nil {
			return fmt.Errorf("failed to bulk create products: %w", err)
		}
		if err := tx.Create(&prices).Error; err != nil {
			return fmt.Errorf("failed to bulk create product prices: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a single product with its nested price.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Price").First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Update saves the product row and, when loaded, its owned price row in one
// transaction. Save touches date_updated via the autoUpdateTime column.
func (r *GORMProductRepository) Update(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).Save(product)
		if res.Error != nil {
			return fmt.Errorf("failed to update product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
		}
		if product.Price != nil {
			if err := tx.Save(product.Price).Error; err != nil {
				return fmt.Errorf("failed to update product price: %w", err)
			}
		}
		return nil
	})
}

// AdjustAmount applies the delta with a single guarded UPDATE so concurrent
// adjustments serialize at the database and the amount can never go negative.
func (r *GORMProductRepository) AdjustAmount(id string, delta int) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND amount + ? >= 0", id, delta).
		Update("amount", gorm.Expr("amount + ?", delta))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to adjust amount for product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the product is missing or the guard rejected the delta;
		// reloading tells the two apart.
		product, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("cannot adjust amount of product %s by %d (current amount %d): %w",
			id, delta, product.Amount, ErrNegativeAmount)
	}
	return r.GetByID(id)
}

// Delete removes the product and its owned price. The price row goes first so
// the cascade holds even where the store does not enforce foreign keys.
func (r *GORMProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductPrice{}, "product_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete product price: %w", err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

// List returns the filtered page of products with nested prices plus the total
// match count. Price criteria and price ordering live on the owned price row,
// so the query always joins it.
func (r *GORMProductRepository) List(filter *models.ProductFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).
		Joins("JOIN product_prices ON product_prices.product_id = products.id")

	if filter.Name != "" {
		query = query.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("product_prices.price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("product_prices.price <= ?", filter.MaxPrice)
	}
	if filter.IsActive != nil {
		query = query.Where("products.is_active = ?", *filter.IsActive)
	}
	if filter.Currency != "" {
		query = query.Where("UPPER(product_prices.currency) = ?", strings.ToUpper(filter.Currency))
	}
	if filter.UpdatedAfter != nil {
		query = query.Where("products.date_updated >= ?", *filter.UpdatedAfter)
	}
	if filter.UpdatedBefore != nil {
		query = query.Where("products.date_updated <= ?", *filter.UpdatedBefore)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.Select("products.*").
		Order(filter.OrderClause()).
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Preload("Price").
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

// assignProductIDs fills in missing identifiers and binds the price to its
// owning product.
func assignProductIDs(product *models.Product) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Price != nil {
		if product.Price.ID == "" {
			product.Price.ID = uuid.New().String()
		}
		product.Price.ProductID = product.ID
	}
}
