package order

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrValidation is the kind shared by all user-recoverable order errors.
// Typed errors below match it through errors.Is, so the outer loop can
// distinguish "re-prompt for a fresh order" from fatal failures.
var ErrValidation = errors.New("invalid order")

// ErrEmptyOrder indicates an order with no items.
var ErrEmptyOrder = fmt.Errorf("%w: at least one item is required", ErrValidation)

// ProductNotFoundError indicates a requested product is not in the catalog.
type ProductNotFoundError struct {
	Name string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.Name)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidQuantityError indicates a requested quantity below one.
type InvalidQuantityError struct {
	Name     string
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be at least 1 for product %s, got %d", e.Name, e.Quantity)
}

func (e *InvalidQuantityError) Is(target error) bool {
	return target == ErrValidation
}

// InsufficientStockError indicates a requested quantity exceeds the sellable
// stock on the order date.
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.Name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrValidation
}

// IsUserError reports whether the order can simply be re-entered: the error
// is user-input shaped and no catalog state has been committed.
func IsUserError(err error) bool {
	return errors.Is(err, ErrValidation)
}
