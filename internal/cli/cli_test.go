package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/unitconv/internal/catalog"
	"github.com/mesh-intelligence/unitconv/internal/sqlite"
	"github.com/mesh-intelligence/unitconv/pkg/types"
	"github.com/mesh-intelligence/unitconv/pkg/unitconv"
)

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	res := env.mustRun("version")
	assert.Equal(t, "unitconv v"+unitconv.Version+"\nmodule: "+modulePath+"\n", res.Stdout)
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustRun("init")
	path := filepath.Join(env.ConfigDir, "config.yaml")
	assert.Equal(t, "Wrote "+path+"\n", res.Stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, want := range []string{"precision: 4", "style: fixed", "default_category: Length", "data_dir: " + env.DataDir} {
		assert.Contains(t, string(data), want)
	}

	res = env.mustRun("init")
	assert.Equal(t, "Config already exists: "+path+"\n", res.Stdout)
}

func TestCategories(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustRun("categories")
	lines := strings.Split(strings.TrimSpace(res.Stdout), "\n")
	assert.Equal(t, catalog.Default().Categories(), lines)

	res = env.mustRun("--json", "categories")
	assert.Equal(t, catalog.Default().Categories(), parseJSON[[]string](t, res.Stdout))
}

func TestUnits(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFirst string
		wantCode  int
		wantErr   string
	}{
		{name: "explicit category", args: []string{"units", "Mass"}, wantFirst: "Tonne"},
		{name: "default category", args: []string{"units"}, wantFirst: "Meter"},
		{name: "category with space", args: []string{"units", "Plane Angle"}, wantFirst: "Degree"},
		{name: "unknown category", args: []string{"units", "Luminosity"}, wantCode: exitUserError, wantErr: "Error: unknown category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			res := env.run(tt.args...)
			require.Equal(t, tt.wantCode, res.ExitCode, res.Stderr)
			if tt.wantErr != "" {
				assert.Contains(t, res.Stderr, tt.wantErr)
				assert.Contains(t, res.Stderr, "valid: Plane Angle, Length")
				return
			}
			lines := strings.Split(strings.TrimSpace(res.Stdout), "\n")
			assert.Equal(t, tt.wantFirst, lines[0])
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "meters to centimeters",
			args:       []string{"convert", "Meter", "Centimeter", "1"},
			wantStdout: "Result: 100.0000\n",
		},
		{
			name:       "value defaults to one",
			args:       []string{"convert", "Kilometer", "Meter"},
			wantStdout: "Result: 1000.0000\n",
		},
		{
			name:       "temperature",
			args:       []string{"convert", "-c", "Temperature", "Celsius", "Fahrenheit", "100"},
			wantStdout: "Result: 212.0000\n",
		},
		{
			name:       "negative value",
			args:       []string{"convert", "-c", "Temperature", "Fahrenheit", "Celsius", "-40"},
			wantStdout: "Result: -40.0000\n",
		},
		{
			name:       "negative value after units",
			args:       []string{"convert", "Meter", "Centimeter", "-5"},
			wantStdout: "Result: -500.0000\n",
		},
		{
			name:       "negative value with flags",
			args:       []string{"convert", "--precision", "1", "-c", "Temperature", "Celsius", "Kelvin", "-273.15"},
			wantStdout: "Result: 0.0\n",
		},
		{
			name:       "overflow",
			args:       []string{"convert", "Kilometer", "Nanometer", "1e300"},
			wantStdout: "Result: +Inf\n",
		},
		{
			name:       "precision flag",
			args:       []string{"convert", "--precision", "2", "Meter", "Centimeter", "1"},
			wantStdout: "Result: 100.00\n",
		},
		{
			name:       "human style",
			args:       []string{"convert", "--style", "human", "--precision", "1", "Kilometer", "Centimeter", "12"},
			wantStdout: "Result: 1,200,000.0\n",
		},
		{
			name:       "raw style",
			args:       []string{"convert", "--style", "raw", "Meter", "Centimeter", "2.5"},
			wantStdout: "Result: 250\n",
		},
		{
			name:       "bad value",
			args:       []string{"convert", "Meter", "Centimeter", "abc"},
			wantCode:   exitUserError,
			wantStderr: `Error: invalid value "abc": not a number`,
		},
		{
			name:       "NaN value",
			args:       []string{"convert", "Meter", "Centimeter", "NaN"},
			wantCode:   exitUserError,
			wantStderr: `Error: invalid value "NaN": not finite`,
		},
		{
			name:       "flag after units is an argument",
			args:       []string{"convert", "Meter", "Centimeter", "1", "--precision", "2"},
			wantCode:   exitUserError,
			wantStderr: "Error: accepts between 2 and 3 arg(s), received 5",
		},
		{
			name:       "unit from another category",
			args:       []string{"convert", "Meter", "Kilogram", "1"},
			wantCode:   exitUserError,
			wantStderr: "Error: unknown unit",
		},
		{
			name:       "unknown category",
			args:       []string{"convert", "-c", "Luminosity", "Lux", "Lumen"},
			wantCode:   exitUserError,
			wantStderr: "Error: unknown category",
		},
		{
			name:       "bad style",
			args:       []string{"convert", "--style", "fancy", "Meter", "Centimeter"},
			wantCode:   exitUserError,
			wantStderr: "Error: unknown output style",
		},
		{
			name:       "missing arguments",
			args:       []string{"convert", "Meter"},
			wantCode:   exitUserError,
			wantStderr: "Error: accepts between 2 and 3 arg(s)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			res := env.run(tt.args...)
			require.Equal(t, tt.wantCode, res.ExitCode, res.Stderr)
			if tt.wantStdout != "" {
				assert.Equal(t, tt.wantStdout, res.Stdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, res.Stderr, tt.wantStderr)
				assert.Empty(t, res.Stdout)
			}
		})
	}
}

func TestConvertJSON(t *testing.T) {
	env := newTestEnv(t)
	res := env.mustRun("--json", "convert", "Meter", "Centimeter", "3")

	got := parseJSON[map[string]any](t, res.Stdout)
	assert.Equal(t, "Length", got["category"])
	assert.Equal(t, "Meter", got["from"])
	assert.Equal(t, "Centimeter", got["to"])
	assert.EqualValues(t, 3, got["value"])
	assert.EqualValues(t, 300, got["result"])
	assert.Equal(t, "300.0000", got["formatted"])
}

func TestConvertJSONOverflow(t *testing.T) {
	env := newTestEnv(t)
	res := env.mustRun("--json", "convert", "Kilometer", "Nanometer", "1e300")

	got := parseJSON[map[string]any](t, res.Stdout)
	assert.Equal(t, "Kilometer", got["from"])
	assert.EqualValues(t, 1e300, got["value"])
	require.Contains(t, got, "result")
	assert.Nil(t, got["result"])
	assert.Equal(t, "+Inf", got["formatted"])
}

func TestConfigFile(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(env.ConfigDir, 0o755))

	writeConfig := func(body string) {
		t.Helper()
		require.NoError(t, os.WriteFile(filepath.Join(env.ConfigDir, "config.yaml"), []byte(body), 0o644))
	}

	writeConfig("precision: 2\ndefault_category: Mass\n")
	res := env.mustRun("convert", "Kilogram", "Gram", "1")
	assert.Equal(t, "Result: 1000.00\n", res.Stdout)

	t.Setenv("UNITCONV_PRECISION", "1")
	res = env.mustRun("convert", "Kilogram", "Gram", "1")
	assert.Equal(t, "Result: 1000.0\n", res.Stdout)

	writeConfig("style: fancy\n")
	res = env.run("categories")
	assert.Equal(t, exitUserError, res.ExitCode)
	assert.Contains(t, res.Stderr, "Error: invalid config: unknown output style")

	writeConfig("default_category: Luminosity\n")
	res = env.run("categories")
	assert.Equal(t, exitUserError, res.ExitCode)
	assert.Contains(t, res.Stderr, "invalid config default_category: unknown category")
}

func TestLogLevelFlag(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustRun("--log-level", "debug", "convert", "Meter", "Centimeter")
	assert.Contains(t, res.Stderr, "converted")
	assert.Contains(t, res.Stderr, "component=cli")

	res = env.run("--log-level", "loud", "categories")
	assert.Equal(t, exitUserError, res.ExitCode)
	assert.Contains(t, res.Stderr, "unknown log level")
}

func TestTable(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustRun("table", "Temperature")
	assert.Contains(t, res.Stdout, "CATEGORY")
	assert.Contains(t, res.Stdout, "scale=1 offset=0")
	assert.Contains(t, res.Stdout, "Fahrenheit")
	assert.NotContains(t, res.Stdout, "Meter")

	res = env.mustRun("table")
	assert.Contains(t, res.Stdout, "factor=1")
	assert.Contains(t, res.Stdout, "Hertz")

	res = env.mustRun("--json", "table", "Length")
	recs := parseJSON[[]types.CategoryRecord](t, res.Stdout)
	require.Len(t, recs, 1)
	assert.Equal(t, "Length", recs[0].Name)
	require.NotEmpty(t, recs[0].Units)
	require.NotNil(t, recs[0].Units[0].Factor)
	assert.Equal(t, 1.0, *recs[0].Units[0].Factor)

	res = env.run("table", "Luminosity")
	assert.Equal(t, exitUserError, res.ExitCode)
	assert.Contains(t, res.Stderr, "Error: unknown category")
}

func TestExport(t *testing.T) {
	t.Run("default path", func(t *testing.T) {
		env := newTestEnv(t)
		res := env.mustRun("export", "--format", "yaml")
		path := filepath.Join(env.DataDir, "catalog.yaml")
		assert.Contains(t, res.Stdout, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Fuel Economy")
	})

	t.Run("sqlite output", func(t *testing.T) {
		env := newTestEnv(t)
		out := filepath.Join(t.TempDir(), "catalog.db")
		env.mustRun("export", "--format", "sqlite", "--output", out)

		snap, err := sqlite.ReadSnapshot(t.Context(), out)
		require.NoError(t, err)
		assert.Len(t, snap.Categories, len(catalog.Default().Categories()))
	})

	t.Run("unknown format", func(t *testing.T) {
		env := newTestEnv(t)
		res := env.run("export", "--format", "xml")
		assert.Equal(t, exitUserError, res.ExitCode)
		assert.Contains(t, res.Stderr, "Error: unknown export format")
	})

	t.Run("unwritable output", func(t *testing.T) {
		env := newTestEnv(t)
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		res := env.run("export", "--output", filepath.Join(blocker, "catalog.json"))
		assert.Equal(t, exitSysError, res.ExitCode)
		assert.Contains(t, res.Stderr, "Error: export:")
	})
}

func TestServeBadListen(t *testing.T) {
	env := newTestEnv(t)
	res := env.run("serve", "--listen", "256.0.0.1:bad")
	assert.Equal(t, exitSysError, res.ExitCode)
	assert.Contains(t, res.Stderr, "Error: listen")
}

func TestUnknownCommand(t *testing.T) {
	env := newTestEnv(t)
	res := env.run("frobnicate")
	assert.Equal(t, exitUserError, res.ExitCode)
	assert.Contains(t, res.Stderr, "Error: unknown command")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitSuccess},
		{name: "user", err: userError(errors.New("bad")), want: exitUserError},
		{name: "system", err: sysError(errors.New("disk")), want: exitSysError},
		{name: "uncoded", err: errors.New("usage"), want: exitUserError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
