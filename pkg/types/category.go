package types

import "errors"

// Unit is a named measurement unit and its conversion rule.
type Unit struct {
	Name string
	Rule Rule
}

// Category is a named group of mutually convertible units, kept in
// declaration order.
type Category struct {
	Name  string
	Units []Unit
}

// Category validation errors.
var (
	ErrEmptyCategory = errors.New("category has no units")
	ErrDuplicateName = errors.New("duplicate name")
	ErrInvalidName   = errors.New("name must not be empty")
)

// Kind returns the rule kind of the first unit. A validated category has a
// single kind.
func (c Category) Kind() RuleKind {
	if len(c.Units) == 0 {
		return RuleLinear
	}
	return c.Units[0].Rule.Kind()
}

// Unit returns the unit with the given name.
func (c Category) Unit(name string) (Unit, bool) {
	for _, u := range c.Units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// UnitNames returns the unit names in declaration order.
func (c Category) UnitNames() []string {
	names := make([]string, len(c.Units))
	for i, u := range c.Units {
		names[i] = u.Name
	}
	return names
}
