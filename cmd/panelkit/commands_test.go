package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/panelkit/internal/config"
	apperrors "github.com/alexisbeaulieu97/panelkit/pkg/errors"
)

const minimalShowcase = `version: "1.0"
name: tiny
panels:
  - id: only
    title: Only
    items:
      - id: ok
        kind: button
        label: OK
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderCommand_DefaultShowcase(t *testing.T) {
	stdout, _, err := executeCommand("render", "--width", "60", "--height", "20")
	require.NoError(t, err)
	assert.Contains(t, stdout, "panelkit showcase")
	assert.Contains(t, stdout, "Play")
	assert.Contains(t, stdout, "skin: myroom")
}

func TestRenderCommand_IndexAndSkin(t *testing.T) {
	stdout, _, err := executeCommand("render", "--width", "60", "--height", "20", "--index", "1", "--skin", "mykitchen")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Subtitles")
	assert.Contains(t, stdout, "skin: mykitchen")
	assert.NotContains(t, stdout, "Queue")
}

func TestRenderCommand_RejectsOutOfRangeIndex(t *testing.T) {
	_, _, err := executeCommand("render", "--width", "60", "--height", "20", "--index", "9")
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "settings.index", validationErr.Field)
}

func TestRenderCommand_FromConfigFile(t *testing.T) {
	path := writeConfig(t, "tiny.yaml", minimalShowcase)

	stdout, _, err := executeCommand("--config", path, "render", "--width", "40", "--height", "12")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tiny")
	assert.Contains(t, stdout, "OK")
}

func TestRenderCommand_LogsSessionFields(t *testing.T) {
	_, stderr, err := executeCommand("--log-level", "debug", "render", "--width", "60", "--height", "20")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rendering frame")
	assert.Contains(t, stderr, "session=")
	assert.Contains(t, stderr, "command=")
}

func TestValidateCommand(t *testing.T) {
	path := writeConfig(t, "tiny.yaml", minimalShowcase)

	stdout, _, err := executeCommand("validate", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 panels, 1 items")
}

func TestValidateCommand_UsesConfigFlag(t *testing.T) {
	path := writeConfig(t, "tiny.yaml", minimalShowcase)

	stdout, _, err := executeCommand("--config", path, "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid")
}

func TestValidateCommand_RequiresPath(t *testing.T) {
	_, _, err := executeCommand("validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file is required")
}

func TestValidateCommand_ReportsInvalidKind(t *testing.T) {
	path := writeConfig(t, "bad.yaml", strings.Replace(minimalShowcase, "kind: button", "kind: slider", 1))

	_, _, err := executeCommand("validate", path)
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "kind")
}

func TestExampleCommand_RoundTrips(t *testing.T) {
	for _, format := range []config.Format{config.FormatYAML, config.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			stdout, _, err := executeCommand("example", "--format", string(format))
			require.NoError(t, err)

			cfg, err := config.Parse([]byte(stdout), format, "example."+string(format))
			require.NoError(t, err)
			require.Len(t, cfg.Panels, 3)
			assert.Equal(t, "settings", cfg.Panels[1].ID)
		})
	}
}

func TestExampleCommand_UnknownFormat(t *testing.T) {
	_, _, err := executeCommand("example", "--format", "json")
	require.Error(t, err)
}

func TestFrameSize_ExplicitWins(t *testing.T) {
	w, h := frameSize(100, 30)
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
}

func TestRenderCommand_GoldenRoundTrip(t *testing.T) {
	golden := filepath.Join(t.TempDir(), "home.golden")
	args := []string{"render", "--width", "60", "--height", "20", "--golden", golden}

	stdout, _, err := executeCommand(append(args, "--update")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "updated")

	stdout, _, err = executeCommand(args...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "frame matches")

	stdout, _, err = executeCommand(append(args, "--index", "2")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame differs")
	assert.Contains(t, stdout, "--- "+golden)
}
