package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
)

// testEnv is an isolated config and data directory for running commands.
type testEnv struct {
	t         *testing.T
	ConfigDir string
	DataDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	return &testEnv{
		t:         t,
		ConfigDir: filepath.Join(dir, "config"),
		DataDir:   filepath.Join(dir, "data"),
	}
}

// cmdResult holds the output and exit code of one command run.
type cmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// run executes unitconv in-process with the environment's directories.
func (e *testEnv) run(args ...string) cmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(allArgs)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	code := run(root, &stderr)
	return cmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// mustRun executes unitconv and fails the test on a non-zero exit.
func (e *testEnv) mustRun(args ...string) cmdResult {
	e.t.Helper()
	res := e.run(args...)
	if res.ExitCode != exitSuccess {
		e.t.Fatalf("unitconv %v: exit %d\nstdout: %s\nstderr: %s", args, res.ExitCode, res.Stdout, res.Stderr)
	}
	return res
}

// parseJSON decodes command output into T.
func parseJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("parse JSON: %v\ninput: %s", err, s)
	}
	return v
}
