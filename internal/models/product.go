package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency codes accepted for a product price.
const (
	CurrencyRUB = "RUB"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyCNY = "CNY"

	// DefaultCurrency is used when a price is submitted without a currency.
	DefaultCurrency = CurrencyRUB
)

// Product represents a stock-keeping unit in the warehouse.
type Product struct {
	ID          string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string        `json:"name" gorm:"type:varchar(200);not null" validate:"required,min=1,max=200"`
	Amount      int           `json:"amount" gorm:"not null" validate:"gte=0"`
	Barcode     string        `json:"barcode" gorm:"type:varchar(13);uniqueIndex;not null" validate:"required,barcode"`
	DateUpdated time.Time     `json:"date_updated" gorm:"autoUpdateTime"`
	IsActive    bool          `json:"is_active" gorm:"not null;default:true"`
	TypeID      string        `json:"type" gorm:"column:type_id;type:varchar(36);not null;index"`
	Type        *ProductType  `json:"-" gorm:"foreignKey:TypeID;constraint:OnDelete:RESTRICT"`
	Price       *ProductPrice `json:"price" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductPrice is the monetary value owned one-to-one by a product.
// The column is fixed-point; decimal.Decimal keeps it exact end to end.
type ProductPrice struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Currency  string          `json:"currency" gorm:"type:varchar(3);not null;default:RUB" validate:"omitempty,oneof=RUB USD EUR CNY"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ProductID string          `json:"-" gorm:"type:varchar(36);uniqueIndex;not null"`
}

// PriceSpec is the nested price payload accepted on create and patch.
type PriceSpec struct {
	Price    decimal.Decimal `json:"price" validate:"required"`
	Currency string          `json:"currency" validate:"omitempty,oneof=RUB USD EUR CNY"`
}

// ProductCreateRequest is the body for POST /products and each element of a
// bulk-create request.
type ProductCreateRequest struct {
	Name    string    `json:"name" validate:"required,min=1,max=200"`
	Amount  int       `json:"amount" validate:"gte=0"`
	Barcode string    `json:"barcode" validate:"required,barcode"`
	TypeID  string    `json:"type" validate:"required"`
	Price   PriceSpec `json:"price" validate:"required"`
}

// ProductPatchRequest is the body for PATCH /products/:id. Amount is absent on
// purpose: the quantity only changes through the update-amount operation, so an
// "amount" key in a patch body is dropped by the JSON decoder.
type ProductPatchRequest struct {
	Name     *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Barcode  *string    `json:"barcode" validate:"omitempty,barcode"`
	TypeID   *string    `json:"type"`
	IsActive *bool      `json:"is_active"`
	Price    *PriceSpec `json:"price"`
}

// BulkCreateRequest wraps the product specs for POST /products/bulk-create.
type BulkCreateRequest struct {
	Products []ProductCreateRequest `json:"products" validate:"required,min=1,dive"`
}

// BulkCreateResponse mirrors the request wrapper; products come back in the
// same order they were submitted.
type BulkCreateResponse struct {
	Products []Product `json:"products"`
}

// AmountDeltaRequest is the body for PATCH /products/:id/update-amount. The
// pointer distinguishes a missing field from a legitimate zero delta.
type AmountDeltaRequest struct {
	AmountDelta *int `json:"amount_delta" validate:"required"`
}

// ProductListResponse is the paginated list envelope.
type ProductListResponse struct {
	Count   int64     `json:"count"`
	Results []Product `json:"results"`
}
