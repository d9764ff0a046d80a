// Package unitconv is the public API of the unit converter: the built-in
// conversion table and a Convert function over it.
//
// Example:
//
//	v, err := unitconv.Convert(1, "Kilobyte", "Bit", "Digital Storage")
//	// v == 8000
package unitconv

import (
	"github.com/mesh-intelligence/unitconv/internal/catalog"
	"github.com/mesh-intelligence/unitconv/internal/convert"
	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// Version is the release version reported by the CLI and exports.
const Version = "0.1.0"

var defaultConverter = convert.New(catalog.Default())

// Catalog returns the built-in conversion table.
func Catalog() types.Catalog {
	return catalog.Default()
}

// Categories returns the built-in category names in listing order.
func Categories() []string {
	return catalog.Default().Categories()
}

// Units returns the unit names of a built-in category.
func Units(category string) ([]string, error) {
	return catalog.Default().Units(category)
}

// Convert converts value from fromUnit to toUnit within category using the
// built-in table. It returns types.ErrUnknownCategory or
// types.ErrUnknownUnit (wrapped) when a name is not in the table.
func Convert(value float64, fromUnit, toUnit, category string) (float64, error) {
	return defaultConverter.Convert(value, fromUnit, toUnit, category)
}
