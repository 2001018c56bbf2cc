package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMenuNotFound     = errors.New("menu not found")
	ErrMenuDateTaken    = errors.New("menu already exists for this date")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrRecipeNotFound   = errors.New("recipe not found")

	ErrEmptyOrder       = errors.New("menu_id and items are required")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrCustomerRequired = errors.New("customer information is required")

	ErrItemNotFound      = errors.New("menu item not found")
	ErrInsufficientStock = errors.New("insufficient quantity available")

	ErrCustomerConflict = errors.New("customer already exists with this whatsapp number")

	ErrReviewRequired       = errors.New("order_id and customer_id are required")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrItemNotInOrder       = errors.New("menu item was not part of this order")
	ErrDuplicateReview      = errors.New("review already exists for this order")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	ErrRecipeTitleRequired = errors.New("recipe title is required")
	ErrMenuFieldsRequired = errors.New("date and items are required")
)

// LineError ties a placement failure to the offending menu item so the
// caller knows which line to fix. It wraps ErrItemNotFound or
// ErrInsufficientStock.
type LineError struct {
	MenuItemID int
	Err        error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("menu item %d: %v", e.MenuItemID, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
