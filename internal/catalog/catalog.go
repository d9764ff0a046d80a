// Package catalog holds the conversion table: categories, their units in
// declaration order, and each unit's conversion rule.
package catalog

import (
	"fmt"

	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// Catalog is an immutable conversion table. It is safe for concurrent use
// because nothing mutates it after New returns.
type Catalog struct {
	order      []string
	categories map[string]types.Category
}

var _ types.Catalog = (*Catalog)(nil)

// New validates the categories and builds a Catalog from them. The slice
// order becomes the listing order.
func New(categories []types.Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, types.ErrEmptyCatalog
	}

	c := &Catalog{
		order:      make([]string, 0, len(categories)),
		categories: make(map[string]types.Category, len(categories)),
	}
	for _, cat := range categories {
		if err := validateCategory(cat); err != nil {
			return nil, err
		}
		if _, dup := c.categories[cat.Name]; dup {
			return nil, fmt.Errorf("%w: category %q", types.ErrDuplicateName, cat.Name)
		}
		c.order = append(c.order, cat.Name)
		c.categories[cat.Name] = copyCategory(cat)
	}
	return c, nil
}

// validateCategory checks the per-category invariants: a name, at least one
// unit, unique unit names, valid rules, and a single rule kind.
func validateCategory(cat types.Category) error {
	if cat.Name == "" {
		return types.ErrInvalidName
	}
	if len(cat.Units) == 0 {
		return fmt.Errorf("%w: %q", types.ErrEmptyCategory, cat.Name)
	}

	seen := make(map[string]bool, len(cat.Units))
	var kind types.RuleKind
	for i, u := range cat.Units {
		if u.Name == "" {
			return fmt.Errorf("%w: unit %d of %q", types.ErrInvalidName, i, cat.Name)
		}
		if seen[u.Name] {
			return fmt.Errorf("%w: unit %q in %q", types.ErrDuplicateName, u.Name, cat.Name)
		}
		seen[u.Name] = true

		if err := types.ValidateRule(u.Rule); err != nil {
			return fmt.Errorf("%w: unit %q in %q", err, u.Name, cat.Name)
		}
		if i == 0 {
			kind = u.Rule.Kind()
		} else if u.Rule.Kind() != kind {
			return fmt.Errorf("%w: unit %q in %q is %s, category is %s",
				types.ErrMixedRuleKinds, u.Name, cat.Name, u.Rule.Kind(), kind)
		}
	}
	return nil
}

func copyCategory(cat types.Category) types.Category {
	units := make([]types.Unit, len(cat.Units))
	copy(units, cat.Units)
	return types.Category{Name: cat.Name, Units: units}
}

// Categories returns the category names in declaration order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Units returns the unit names of category in declaration order.
func (c *Catalog) Units(category string) ([]string, error) {
	cat, ok := c.categories[category]
	if !ok {
		return nil, unknownCategory(category)
	}
	return cat.UnitNames(), nil
}

// Rule returns the conversion rule for unit within category.
func (c *Catalog) Rule(category, unit string) (types.Rule, error) {
	cat, ok := c.categories[category]
	if !ok {
		return nil, unknownCategory(category)
	}
	u, ok := cat.Unit(unit)
	if !ok {
		return nil, fmt.Errorf("%w: %q in category %q", types.ErrUnknownUnit, unit, category)
	}
	return u.Rule, nil
}

// Category returns a copy of the named category.
func (c *Catalog) Category(name string) (types.Category, error) {
	cat, ok := c.categories[name]
	if !ok {
		return types.Category{}, unknownCategory(name)
	}
	return copyCategory(cat), nil
}

func unknownCategory(name string) error {
	return fmt.Errorf("%w: %q", types.ErrUnknownCategory, name)
}
