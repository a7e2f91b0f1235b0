package models

// ProductType is a category grouping products. A type cannot be deleted while
// any product still references it.
type ProductType struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`
}

// ProductTypeCreateRequest is the body for POST /product-types.
type ProductTypeCreateRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// ProductTypePatchRequest is the body for PATCH /product-types/:id.
type ProductTypePatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}
