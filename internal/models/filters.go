package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// orderingFields maps client-facing ordering keys to storage columns. "price"
// is an alias: products carry no price column of their own, so it resolves to
// the owned price row. Anything outside this table is rejected at parse time.
var orderingFields = map[string]string{
	"name":         "products.name",
	"date_updated": "products.date_updated",
	"price":        "product_prices.price",
}

// timeLayouts accepted for the date_updated_after/before filters.
var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// ProductFilter is the translated form of a product list query string. All
// criteria are optional and combined with AND.
type ProductFilter struct {
	Name          string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	IsActive      *bool
	Currency      string
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time

	ordering string // resolved ORDER BY clause, never raw client input
	Page     int
	PageSize int
}

// ParseProductFilter translates a bag of query parameters into a ProductFilter.
// Malformed values and unknown ordering keys are reported as errors rather than
// passed through to the store.
func ParseProductFilter(params map[string]string) (*ProductFilter, error) {
	filter := &ProductFilter{
		Name:     params["name"],
		Currency: params["currency"],
		Page:     1,
		PageSize: DefaultPageSize,
	}

	var err error
	if filter.MinPrice, err = parseDecimalParam(params, "min_price"); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = parseDecimalParam(params, "max_price"); err != nil {
		return nil, err
	}
	if filter.UpdatedAfter, err = parseTimeParam(params, "date_updated_after"); err != nil {
		return nil, err
	}
	if filter.UpdatedBefore, err = parseTimeParam(params, "date_updated_before"); err != nil {
		return nil, err
	}

	if raw, ok := params["is_active"]; ok && raw != "" {
		active, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid is_active value %q", raw)
		}
		filter.IsActive = &active
	}

	if filter.ordering, err = ResolveOrdering(params["ordering"]); err != nil {
		return nil, err
	}

	if raw, ok := params["page"]; ok && raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, fmt.Errorf("invalid page value %q", raw)
		}
		filter.Page = page
	}
	if raw, ok := params["page_size"]; ok && raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return nil, fmt.Errorf("invalid page_size value %q", raw)
		}
		if size > MaxPageSize {
			size = MaxPageSize
		}
		filter.PageSize = size
	}

	return filter, nil
}

// ResolveOrdering validates an ordering key against the allowed set and
// resolves it to an ORDER BY clause. A leading '-' means descending. An empty
// key falls back to the collection's native ordering by last update.
func ResolveOrdering(ordering string) (string, error) {
	if ordering == "" {
		return "products.date_updated ASC", nil
	}

	direction := "ASC"
	key := ordering
	if strings.HasPrefix(key, "-") {
		direction = "DESC"
		key = key[1:]
	}

	column, ok := orderingFields[key]
	if !ok {
		return "", fmt.Errorf("unknown ordering field %q", key)
	}
	return column + " " + direction, nil
}

// OrderClause returns the resolved ORDER BY clause for this filter.
func (f *ProductFilter) OrderClause() string {
	if f.ordering == "" {
		return "products.date_updated ASC"
	}
	return f.ordering
}

// Offset returns the row offset for the requested page.
func (f *ProductFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

func parseDecimalParam(params map[string]string, key string) (*decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q", key, raw)
	}
	return &value, nil
}

func parseTimeParam(params map[string]string, key string) (*time.Time, error) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("invalid %s value %q", key, raw)
}
