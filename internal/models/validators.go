package models

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidBarcode marks barcode format failures so handlers can map them to
// a client error.
var ErrInvalidBarcode = errors.New("invalid barcode")

// barcodePattern accepts EAN-8 and EAN-13 style codes: exactly 8 or exactly 13
// digits, nothing else.
var barcodePattern = regexp.MustCompile(`^\d{8}$|^\d{13}$`)

// ValidateBarcode checks that the value is an 8- or 13-digit string.
func ValidateBarcode(value string) error {
	if !barcodePattern.MatchString(value) {
		return fmt.Errorf("%w: must consist of exactly 8 or 13 digits, got %q", ErrInvalidBarcode, value)
	}
	return nil
}

// ApplyAmountDelta returns the amount after a relative adjustment. It is the
// sole guard against negative inventory: the sum must stay >= 0.
func ApplyAmountDelta(currentAmount, delta int) (int, error) {
	newAmount := currentAmount + delta
	if newAmount < 0 {
		return 0, fmt.Errorf("amount cannot go below zero: current amount %d, delta %d", currentAmount, delta)
	}
	return newAmount, nil
}

// RegisterValidations adds the custom "barcode" tag to a validator instance so
// request structs can declare it alongside the built-in tags.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("barcode", func(fl validator.FieldLevel) bool {
		return ValidateBarcode(fl.Field().String()) == nil
	})
}
