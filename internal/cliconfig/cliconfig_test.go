package cliconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcpi/redfish-modelgen/internal/cliconfig"
	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
)

func TestParseHappyPath(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	cfg, err := cliconfig.Parse([]string{"-verbose", in, out})
	require.NoError(t, err)

	assert.Equal(t, in, cfg.InputRoot)
	assert.Equal(t, out, cfg.OutputRoot)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.StrictMissingRefs)
}

func TestParseMissingPositionalArgsErrors(t *testing.T) {
	_, err := cliconfig.Parse([]string{t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, modelerr.ErrArgument)
}

func TestParseRejectsNonexistentPath(t *testing.T) {
	_, err := cliconfig.Parse([]string{filepath.Join(t.TempDir(), "does-not-exist"), t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, modelerr.ErrArgument)
}

func TestParseResolvesGoModuleBaseFromNearestGoMod(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module github.com/acme/widgets\n\ngo 1.24\n"), 0o644))

	outputRoot := filepath.Join(root, "internal", "model")
	require.NoError(t, os.MkdirAll(outputRoot, 0o755))

	cfg, err := cliconfig.Parse([]string{t.TempDir(), outputRoot})
	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/widgets/internal/model", cfg.GoModuleBase)
}

func TestParseGoModuleFlagOverridesResolution(t *testing.T) {
	cfg, err := cliconfig.Parse([]string{"-go-module", "example.com/custom", t.TempDir(), t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "example.com/custom", cfg.GoModuleBase)
}

func TestParseOverlaysConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"verbose": true, "strict_missing_refs": true}`), 0o644))

	cfg, err := cliconfig.Parse([]string{"-config", configPath, t.TempDir(), t.TempDir()})
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.StrictMissingRefs)
}
