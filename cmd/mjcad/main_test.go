package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSnapshot = `{
  "assembly": "demo",
  "parts": [
    {
      "label": "base",
      "position": [0, 0, 0],
      "quaternion": [0, 0, 0, 1],
      "color": [0.5, 0.5, 0.5, 0],
      "bounds": {"min": [-1, -1, 0], "max": [1, 1, 1]}
    }
  ]
}`

const testScene = `
body "base" {
  joint {
    type = "free"
  }
}
`

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "expected help text on the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_CompilesScene(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	snapPath := filepath.Join(dir, "demo.json")
	require.NoError(t, os.WriteFile(snapPath, []byte(testSnapshot), 0o600))
	scenePath := filepath.Join(dir, "scene.hcl")
	require.NoError(t, os.WriteFile(scenePath, []byte(testScene), 0o600))
	outDir := filepath.Join(dir, "out")

	out := &bytes.Buffer{}
	err := run(out, []string{"-scene", scenePath, "-o", outDir, snapPath})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "model.xml"))
	require.NoError(t, err, "expected the model file to be written")
}

func TestRun_CompileFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	snapPath := filepath.Join(dir, "demo.json")
	require.NoError(t, os.WriteFile(snapPath, []byte(testSnapshot), 0o600))
	scenePath := filepath.Join(dir, "scene.hcl")
	// The scene names a body the snapshot does not carry.
	require.NoError(t, os.WriteFile(scenePath, []byte(`body "phantom" {}`), 0o600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-scene", scenePath, "-o", filepath.Join(dir, "out"), snapPath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "phantom")
}
