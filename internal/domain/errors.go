package domain

import (
	"errors"
	"fmt"
)

// User-facing validation messages.
const (
	MsgAllFieldsRequired     = "All fields are required!"
	MsgInvalidPriceQuantity  = "Please enter a valid quantity and price!"
	MsgPriceQuantityPositive = "Price and Quantity must be greater than 0!"
	MsgDuplicateID           = "Product ID already exists!"
	MsgIDRequiredForRemove   = "Please enter a product ID to remove!"
	MsgIDAndQuantityRequired = "Please fill ID and quantity!"
	MsgInvalidQuantity       = "Please enter a valid quantity!"
	MsgQuantityPositive      = "Quantity must be greater than 0!"
	MsgQuantityTooLarge      = "Quantity is too large!"
)

// Error kinds reported by ErrorKind.
const (
	KindValidation        = "validation"
	KindNotFound          = "not_found"
	KindInsufficientStock = "insufficient_stock"
	KindInternal          = "internal"
)

// ValidationError reports malformed, missing or out-of-range input,
// including a duplicate id on add.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports that no product matches the referenced id.
type NotFoundError struct {
	ID string
	// Remove marks a failed removal, reported with a trailing "!".
	Remove bool
}

func (e *NotFoundError) Error() string {
	if e.Remove {
		return fmt.Sprintf("Product with ID %s not found!", e.ID)
	}
	return fmt.Sprintf("Product with ID %s not found", e.ID)
}

// InsufficientStockError reports a reservation larger than the stock on hand.
type InsufficientStockError struct {
	ID        string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock for product ID: %s", e.ID)
}

// Invalid returns a ValidationError for field.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ErrorKind classifies err by the engine error it wraps.
func ErrorKind(err error) string {
	var (
		ve *ValidationError
		ne *NotFoundError
		ie *InsufficientStockError
	)
	switch {
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &ne):
		return KindNotFound
	case errors.As(err, &ie):
		return KindInsufficientStock
	default:
		return KindInternal
	}
}
