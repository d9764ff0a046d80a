// Package convert evaluates conversions against a catalog.
package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// Converter converts values between units of one catalog category. It holds
// no mutable state and is safe for concurrent use.
type Converter struct {
	catalog types.Catalog
}

// New returns a Converter reading rules from catalog.
func New(catalog types.Catalog) *Converter {
	return &Converter{catalog: catalog}
}

// Convert returns value expressed in fromUnit converted to toUnit. Both units
// must belong to category. For linear rules the result is
// value*factor(from)/factor(to); for affine rules it is
// to.FromBase(from.ToBase(value)). On error the returned value is 0.
func (c *Converter) Convert(value float64, fromUnit, toUnit, category string) (float64, error) {
	from, err := c.catalog.Rule(category, fromUnit)
	if err != nil {
		return 0, err
	}
	to, err := c.catalog.Rule(category, toUnit)
	if err != nil {
		return 0, err
	}
	if from.Kind() != to.Kind() {
		return 0, fmt.Errorf("%w: %q is %s, %q is %s",
			types.ErrMixedRuleKinds, fromUnit, from.Kind(), toUnit, to.Kind())
	}
	return to.FromBase(from.ToBase(value)), nil
}

// Request is one conversion as gathered by a presentation layer.
type Request struct {
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Value    float64 `json:"value"`
}

// Result echoes the request together with the converted value.
type Result struct {
	Request
	Result float64 `json:"result"`
}

// Finite reports whether the converted value is neither infinite nor NaN.
// Overflow of a finite input yields ±Inf.
func (r Result) Finite() bool {
	return !math.IsInf(r.Result, 0) && !math.IsNaN(r.Result)
}

// ParseValue parses user input as a conversion value. Input that is not a
// number, or that parses to ±Inf or NaN, returns types.ErrInvalidValue.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w %q: not a number", types.ErrInvalidValue, s)
	}
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w %q: not finite", types.ErrInvalidValue, s)
	}
	return v, nil
}

// Do runs req through Convert.
func (c *Converter) Do(req Request) (Result, error) {
	v, err := c.Convert(req.Value, req.From, req.To, req.Category)
	if err != nil {
		return Result{}, err
	}
	return Result{Request: req, Result: v}, nil
}
