package models_test

import (
	"testing"

	"gudang/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateBarcode(t *testing.T) {
	valid := []string{"12345678", "1234567890123", "00000000", "9999999999999"}
	for _, barcode := range valid {
		assert.NoError(t, models.ValidateBarcode(barcode), "barcode %q should be accepted", barcode)
	}

	invalid := []string{
		"",
		"abcdefgh",          // letters, right length
		"123456789",         // 9 digits
		"1234567",           // 7 digits
		"123456789012",      // 12 digits
		"12345678901234",    // 14 digits
		"1234567a",          // digit count right, non-digit inside
		" 12345678",         // leading space
		"12345678\n1234567", // newline must not let a prefix match through
	}
	for _, barcode := range invalid {
		err := models.ValidateBarcode(barcode)
		assert.Error(t, err, "barcode %q should be rejected", barcode)
		assert.ErrorIs(t, err, models.ErrInvalidBarcode)
	}
}

func TestApplyAmountDelta(t *testing.T) {
	// Positive delta
	newAmount, err := models.ApplyAmountDelta(50, 50)
	assert.NoError(t, err)
	assert.Equal(t, 100, newAmount)

	// Negative delta down to exactly zero is allowed
	newAmount, err = models.ApplyAmountDelta(10, -10)
	assert.NoError(t, err)
	assert.Equal(t, 0, newAmount)

	// Zero delta is a no-op
	newAmount, err = models.ApplyAmountDelta(7, 0)
	assert.NoError(t, err)
	assert.Equal(t, 7, newAmount)

	// Delta driving the amount below zero is rejected
	_, err = models.ApplyAmountDelta(50, -100)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot go below zero")
}

func TestRegisterValidationsBarcodeTag(t *testing.T) {
	validate := validator.New()
	assert.NoError(t, models.RegisterValidations(validate))

	req := models.ProductCreateRequest{
		Name:    "NokiaPhone",
		Amount:  50,
		Barcode: "12345678",
		TypeID:  "type-1",
		Price:   models.PriceSpec{Price: decimal.NewFromInt(500), Currency: "RUB"},
	}
	assert.NoError(t, validate.Struct(req))

	req.Barcode = "123456789"
	assert.Error(t, validate.Struct(req))

	req.Barcode = "1234567890123"
	assert.NoError(t, validate.Struct(req))

	req.Price.Currency = "GBP" // not in the accepted currency set
	assert.Error(t, validate.Struct(req))
}
