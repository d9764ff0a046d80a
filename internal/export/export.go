// Package export describes a catalog as a Snapshot and encodes it to files.
package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/unitconv/internal/sqlite"
	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// Supported export formats.
const (
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
	FormatSQLite  = "sqlite"
)

// Formats lists the supported formats in help order.
var Formats = []string{FormatJSON, FormatJSONL, FormatYAML, FormatMsgpack, FormatSQLite}

// extensions maps formats to their default file extension.
var extensions = map[string]string{
	FormatJSON:    ".json",
	FormatJSONL:   ".jsonl",
	FormatYAML:    ".yaml",
	FormatMsgpack: ".msgpack",
	FormatSQLite:  ".db",
}

// Extension returns the default file extension for format.
func Extension(format string) (string, error) {
	ext, ok := extensions[format]
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownFormat, format)
	}
	return ext, nil
}

// Build describes every category and unit of catalog, in listing order.
func Build(catalog types.Catalog, version string, now time.Time) (types.Snapshot, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("generating snapshot ID: %w", err)
	}

	snap := types.Snapshot{
		ID:          id.String(),
		Version:     version,
		GeneratedAt: now.UTC(),
	}
	for i, name := range catalog.Categories() {
		cat, err := catalog.Category(name)
		if err != nil {
			return types.Snapshot{}, err
		}
		rec := types.CategoryRecord{
			Name:    cat.Name,
			Ordinal: i,
			Kind:    cat.Kind().String(),
			Units:   make([]types.UnitRecord, 0, len(cat.Units)),
		}
		for j, u := range cat.Units {
			rec.Units = append(rec.Units, unitRecord(j, u))
		}
		snap.Categories = append(snap.Categories, rec)
	}
	return snap, nil
}

func unitRecord(ordinal int, u types.Unit) types.UnitRecord {
	rec := types.UnitRecord{Name: u.Name, Ordinal: ordinal}
	switch r := u.Rule.(type) {
	case types.LinearRule:
		factor := r.Factor
		rec.Factor = &factor
	case types.AffineRule:
		scale, offset := r.Coefficients()
		rec.Scale = &scale
		rec.Offset = &offset
	}
	return rec
}

// Encode writes snap to w. The sqlite format needs a file and is rejected
// here; use WriteFile.
func Encode(w io.Writer, format string, snap types.Snapshot) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatJSONL:
		return encodeJSONL(w, snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(snap)
	case FormatSQLite:
		return fmt.Errorf("%w: %q cannot be streamed", types.ErrUnknownFormat, format)
	default:
		return fmt.Errorf("%w: %q", types.ErrUnknownFormat, format)
	}
}

// unitLine is one JSONL record: a unit flattened with its category.
type unitLine struct {
	Category string   `json:"category"`
	Kind     string   `json:"kind"`
	Unit     string   `json:"unit"`
	Factor   *float64 `json:"factor,omitempty"`
	Scale    *float64 `json:"scale,omitempty"`
	Offset   *float64 `json:"offset,omitempty"`
}

func encodeJSONL(w io.Writer, snap types.Snapshot) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, cat := range snap.Categories {
		for _, u := range cat.Units {
			line := unitLine{
				Category: cat.Name,
				Kind:     cat.Kind,
				Unit:     u.Name,
				Factor:   u.Factor,
				Scale:    u.Scale,
				Offset:   u.Offset,
			}
			if err := enc.Encode(line); err != nil {
				return fmt.Errorf("encoding %s/%s: %w", cat.Name, u.Name, err)
			}
		}
	}
	return bw.Flush()
}

// WriteFile writes snap to path in format. Stream formats are written with
// the temp-file, fsync, rename pattern so readers never see a partial file.
func WriteFile(ctx context.Context, path, format string, snap types.Snapshot) error {
	if _, err := Extension(format); err != nil {
		return err
	}
	if format == FormatSQLite {
		return sqlite.WriteSnapshot(ctx, path, snap)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, format, snap); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
