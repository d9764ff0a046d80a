package types

import (
	"errors"
	"time"
)

// Snapshot is a serialisable description of a catalog. Linear units carry
// Factor; affine units carry Scale and Offset with ToBase(x) = x*Scale + Offset.
type Snapshot struct {
	ID          string           `json:"id" yaml:"id" msgpack:"id"`
	Version     string           `json:"version" yaml:"version" msgpack:"version"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at" msgpack:"generated_at"`
	Categories  []CategoryRecord `json:"categories" yaml:"categories" msgpack:"categories"`
}

// CategoryRecord describes one category of a Snapshot.
type CategoryRecord struct {
	Name    string       `json:"name" yaml:"name" msgpack:"name"`
	Ordinal int          `json:"ordinal" yaml:"ordinal" msgpack:"ordinal"`
	Kind    string       `json:"kind" yaml:"kind" msgpack:"kind"`
	Units   []UnitRecord `json:"units" yaml:"units" msgpack:"units"`
}

// UnitRecord describes one unit of a CategoryRecord.
type UnitRecord struct {
	Name    string   `json:"name" yaml:"name" msgpack:"name"`
	Ordinal int      `json:"ordinal" yaml:"ordinal" msgpack:"ordinal"`
	Factor  *float64 `json:"factor,omitempty" yaml:"factor,omitempty" msgpack:"factor,omitempty"`
	Scale   *float64 `json:"scale,omitempty" yaml:"scale,omitempty" msgpack:"scale,omitempty"`
	Offset  *float64 `json:"offset,omitempty" yaml:"offset,omitempty" msgpack:"offset,omitempty"`
}

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")
