package types

import (
	"errors"
	"math"
)

// RuleKind tags the representation of a conversion rule.
type RuleKind int

// Rule kinds. A category holds rules of exactly one kind.
const (
	RuleLinear RuleKind = iota
	RuleAffine
)

// String returns the lower-case name of the kind.
func (k RuleKind) String() string {
	switch k {
	case RuleLinear:
		return "linear"
	case RuleAffine:
		return "affine"
	default:
		return "unknown"
	}
}

// Rule converts values of one unit to and from the implicit base unit of
// its category. Converting between two units of a category is
// to.FromBase(from.ToBase(v)).
type Rule interface {
	Kind() RuleKind
	ToBase(v float64) float64
	FromBase(v float64) float64
}

// Rule construction errors.
var (
	ErrInvalidRule    = errors.New("invalid conversion rule")
	ErrMixedRuleKinds = errors.New("mixed rule kinds")
)

// LinearRule scales by a positive factor: value_in_base = value * Factor.
type LinearRule struct {
	Factor float64
}

// Kind returns RuleLinear.
func (r LinearRule) Kind() RuleKind { return RuleLinear }

// ToBase returns v * Factor.
func (r LinearRule) ToBase(v float64) float64 { return v * r.Factor }

// FromBase returns v / Factor.
func (r LinearRule) FromBase(v float64) float64 { return v / r.Factor }

// Validate reports ErrInvalidRule unless Factor is finite and strictly positive.
func (r LinearRule) Validate() error {
	if math.IsNaN(r.Factor) || math.IsInf(r.Factor, 0) || r.Factor <= 0 {
		return ErrInvalidRule
	}
	return nil
}

// AffineRule converts through a pair of inverse functions. It is used where
// scales differ by an offset as well as a ratio (temperature).
type AffineRule struct {
	ToBaseFunc   func(float64) float64
	FromBaseFunc func(float64) float64
}

// Kind returns RuleAffine.
func (r AffineRule) Kind() RuleKind { return RuleAffine }

// ToBase applies ToBaseFunc.
func (r AffineRule) ToBase(v float64) float64 { return r.ToBaseFunc(v) }

// FromBase applies FromBaseFunc.
func (r AffineRule) FromBase(v float64) float64 { return r.FromBaseFunc(v) }

// affineProbes are the sample points Validate round-trips.
var affineProbes = []float64{-459.67, -273.15, -40, -1, 0, 1, 32, 37.5, 100, 1e6}

// Validate checks that both functions are present and that FromBase inverts
// ToBase on a fixed set of sample points.
func (r AffineRule) Validate() error {
	if r.ToBaseFunc == nil || r.FromBaseFunc == nil {
		return ErrInvalidRule
	}
	for _, x := range affineProbes {
		got := r.FromBaseFunc(r.ToBaseFunc(x))
		if math.Abs(got-x) > 1e-9*math.Max(1, math.Abs(x)) {
			return ErrInvalidRule
		}
	}
	return nil
}

// Coefficients returns scale and offset such that ToBase(x) = x*scale + offset.
// They are derived from ToBase(0) and ToBase(1) and are only meant for
// describing the rule; conversions always go through the functions.
func (r AffineRule) Coefficients() (scale, offset float64) {
	offset = r.ToBaseFunc(0)
	scale = r.ToBaseFunc(1) - offset
	return scale, offset
}

// ValidateRule validates r according to its concrete type.
func ValidateRule(r Rule) error {
	switch rule := r.(type) {
	case LinearRule:
		return rule.Validate()
	case AffineRule:
		return rule.Validate()
	case nil:
		return ErrInvalidRule
	default:
		return nil
	}
}
