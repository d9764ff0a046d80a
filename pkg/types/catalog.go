package types

import "errors"

// Catalog is the read-only conversion table. Implementations must be safe
// for concurrent use.
type Catalog interface {
	// Categories returns the category names in declaration order. Never empty.
	Categories() []string

	// Units returns the unit names of a category in declaration order.
	// Returns ErrUnknownCategory if the category does not exist.
	Units(category string) ([]string, error)

	// Rule returns the conversion rule of a unit.
	// Returns ErrUnknownCategory or ErrUnknownUnit when a lookup fails.
	Rule(category, unit string) (Rule, error)

	// Category returns a copy of the named category.
	// Returns ErrUnknownCategory if the category does not exist.
	Category(name string) (Category, error)
}

// Lookup errors.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrEmptyCatalog    = errors.New("catalog has no categories")
)

// ErrInvalidValue is returned when an input value is not a finite number.
var ErrInvalidValue = errors.New("invalid value")
