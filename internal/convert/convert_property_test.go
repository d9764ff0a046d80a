//go:build property

package convert

import (
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mesh-intelligence/unitconv/internal/catalog"
	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// pair is a category with two of its units.
type pair struct {
	category string
	from, to string
}

// genPair draws a category and two of its units from the built-in table.
func genPair(cat types.Catalog) gopter.Gen {
	names := cat.Categories()
	return gen.IntRange(0, len(names)-1).FlatMap(func(v interface{}) gopter.Gen {
		name := names[v.(int)]
		units, _ := cat.Units(name)
		return gopter.CombineGens(
			gen.IntRange(0, len(units)-1),
			gen.IntRange(0, len(units)-1),
		).Map(func(idx []interface{}) pair {
			return pair{category: name, from: units[idx[0].(int)], to: units[idx[1].(int)]}
		})
	}, reflect.TypeOf(pair{}))
}

func closeEnough(want, got float64) bool {
	return math.Abs(want-got) <= 1e-9*math.Max(1, math.Abs(want))
}

func TestConverterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	cat := catalog.Default()
	c := New(cat)

	properties.Property("self conversion is identity", prop.ForAll(
		func(p pair, v float64) bool {
			got, err := c.Convert(v, p.from, p.from, p.category)
			return err == nil && closeEnough(v, got)
		},
		genPair(cat),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("round trip restores the value", prop.ForAll(
		func(p pair, v float64) bool {
			there, err := c.Convert(v, p.from, p.to, p.category)
			if err != nil {
				return false
			}
			back, err := c.Convert(there, p.to, p.from, p.category)
			return err == nil && closeEnough(v, back)
		},
		genPair(cat),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("linear conversion is value*factor(from)/factor(to)", prop.ForAll(
		func(p pair, v float64) bool {
			from, _ := cat.Rule(p.category, p.from)
			to, _ := cat.Rule(p.category, p.to)
			fa, okA := from.(types.LinearRule)
			fb, okB := to.(types.LinearRule)
			if !okA || !okB {
				return true
			}
			got, err := c.Convert(v, p.from, p.to, p.category)
			return err == nil && got == v*fa.Factor/fb.Factor
		},
		genPair(cat),
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("unknown units never yield a value", prop.ForAll(
		func(p pair, junk string) bool {
			if _, err := cat.Rule(p.category, junk); err == nil {
				return true
			}
			got, err := c.Convert(1, junk, p.to, p.category)
			return err != nil && got == 0
		},
		genPair(cat),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
