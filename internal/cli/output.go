package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysError(fmt.Errorf("encode output: %w", err))
	}
	return nil
}

// printLines writes one item per line.
func printLines(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
}

// lookupError turns a catalog lookup failure into a user error that lists
// the valid choices.
func (a *app) lookupError(err error, category string) error {
	switch {
	case errors.Is(err, types.ErrUnknownCategory):
		return userError(fmt.Errorf("%w (valid: %s)", err, strings.Join(a.catalog.Categories(), ", ")))
	case errors.Is(err, types.ErrUnknownUnit):
		units, uerr := a.catalog.Units(category)
		if uerr != nil {
			return userError(err)
		}
		return userError(fmt.Errorf("%w (valid: %s)", err, strings.Join(units, ", ")))
	default:
		return userError(err)
	}
}
