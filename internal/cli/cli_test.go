package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHappyPath(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := Parse([]string{"-scene", "scene.hcl", "snap.json"}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, config)

	assert.Equal(t, "snap.json", config.SnapshotPath)
	assert.Equal(t, "scene.hcl", config.ScenePath)
	assert.Equal(t, "mujoco_out", config.OutDir)
	assert.Equal(t, "model.xml", config.ModelName)
	assert.False(t, config.ExportMeshes)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
}

func TestParseAllFlags(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := Parse([]string{
		"-sheet", "JointSheet",
		"-o", "build",
		"-model", "robot.xml",
		"-export-meshes",
		"-log-format", "json",
		"-log-level", "debug",
		"snap.json",
	}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "JointSheet", config.SheetLabel)
	assert.Equal(t, "build", config.OutDir)
	assert.Equal(t, "robot.xml", config.ModelName)
	assert.True(t, config.ExportMeshes)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestParseNoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "SNAPSHOT_PATH")
}

func TestParseHelpFlag(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseUsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no topology source",
			args: []string{"snap.json"},
			want: "exactly one topology source",
		},
		{
			name: "two topology sources",
			args: []string{"-scene", "a.hcl", "-joints", "b.xml", "snap.json"},
			want: "exactly one topology source",
		},
		{
			name: "invalid log level",
			args: []string{"-scene", "a.hcl", "-log-level", "verbose", "snap.json"},
			want: "invalid log-level",
		},
		{
			name: "invalid log format",
			args: []string{"-scene", "a.hcl", "-log-format", "xml", "snap.json"},
			want: "invalid log-format",
		},
		{
			name: "unknown flag",
			args: []string{"-frobnicate", "snap.json"},
			want: "flag provided but not defined",
		},
		{
			name: "extra positional argument",
			args: []string{"-scene", "a.hcl", "snap.json", "extra.json"},
			want: "unexpected extra argument",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			config, shouldExit, err := Parse(tc.args, &out)
			assert.Nil(t, config)
			assert.False(t, shouldExit)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParseNormalizesLogFlagCase(t *testing.T) {
	var out bytes.Buffer
	config, _, err := Parse([]string{"-scene", "a.hcl", "-log-level", "DEBUG", "-log-format", "JSON", "snap.json"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
}
