package format

import (
	"math"
	"testing"

	"github.com/mesh-intelligence/unitconv/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	assert.Equal(t, "100.0000", Fixed(100, 4))
	assert.Equal(t, "32.0000", Fixed(32, 4))
	assert.Equal(t, "273.1500", Fixed(273.15, 4))
	assert.Equal(t, "-0.5", Fixed(-0.5, 1))
	assert.Equal(t, "8000", Fixed(8000, 0))
	assert.Equal(t, "0.0000", Fixed(1.60218e-19, 4))
}

func TestRaw(t *testing.T) {
	assert.Equal(t, "100", Raw(100))
	assert.Equal(t, "1.60218e-19", Raw(1.60218e-19))
	assert.Equal(t, "+Inf", Raw(math.Inf(1)))
}

func TestHuman(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{"groups thousands", 1234567.891, 2, "1,234,567.89"},
		{"negative value", -1500, 1, "-1,500.0"},
		{"small value keeps precision", 100, 4, "100.0000"},
		{"huge value falls back to raw", 1e20, 4, "1e+20"},
		{"NaN falls back to raw", math.NaN(), 4, "NaN"},
		{"infinity falls back to raw", math.Inf(-1), 4, "-Inf"},
		{"wide precision falls back to raw", 0.25, 12, "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Human(tt.value, tt.precision))
		})
	}
}

func TestNew(t *testing.T) {
	f, err := New(types.StyleFixed, 4)
	require.NoError(t, err)
	assert.Equal(t, "100.0000", f.Format(100))

	f, err = New(types.StyleRaw, 4)
	require.NoError(t, err)
	assert.Equal(t, "100", f.Format(100))

	f, err = New(types.StyleHuman, 0)
	require.NoError(t, err)
	assert.Equal(t, "8,000", f.Format(8000))

	_, err = New("roman", 4)
	assert.ErrorIs(t, err, types.ErrInvalidStyle)

	_, err = New(types.StyleFixed, -2)
	assert.ErrorIs(t, err, types.ErrInvalidPrecision)
}
