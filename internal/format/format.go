// Package format renders conversion results for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// humanMaxPrecision is the largest fraction width go-humanize can round.
const humanMaxPrecision = 10

// humanMaxMagnitude keeps the integer part within what go-humanize can
// render through int64.
const humanMaxMagnitude = 1e15

// Formatter renders values in one style at one precision.
type Formatter struct {
	Style     string
	Precision int
}

// New returns a Formatter after checking style and precision.
func New(style string, precision int) (Formatter, error) {
	switch style {
	case types.StyleFixed, types.StyleHuman, types.StyleRaw:
	default:
		return Formatter{}, fmt.Errorf("%w: %q", types.ErrInvalidStyle, style)
	}
	if precision < 0 || precision > types.MaxPrecision {
		return Formatter{}, fmt.Errorf("%w: %d", types.ErrInvalidPrecision, precision)
	}
	return Formatter{Style: style, Precision: precision}, nil
}

// Format renders v.
func (f Formatter) Format(v float64) string {
	switch f.Style {
	case types.StyleHuman:
		return Human(v, f.Precision)
	case types.StyleRaw:
		return Raw(v)
	default:
		return Fixed(v, f.Precision)
	}
}

// Fixed renders v with exactly precision fractional digits.
func Fixed(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Raw renders the shortest representation that round-trips.
func Raw(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Human renders v with thousands separators. Values go-humanize cannot
// group (non-finite, very large, or too many fraction digits) fall back to
// Raw.
func Human(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= humanMaxMagnitude || precision > humanMaxPrecision {
		return Raw(v)
	}
	return humanize.FormatFloat("#,###."+strings.Repeat("#", precision), v)
}
