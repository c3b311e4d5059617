package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/binfile/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "Binfile", cfg.Bundle.File)
	assert.True(t, cfg.Bundle.Versions)
	assert.True(t, cfg.Bundle.Executable)
	assert.False(t, cfg.Bundle.Overwrite)
	assert.Equal(t, "gem", cfg.Install.Program)
	assert.Equal(t, "sh", cfg.Install.Shell)
	assert.True(t, cfg.Install.Confirm)
}

func TestLoadFromMissingDir(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFromTOMLOverride(t *testing.T) {
	dir := t.TempDir()
	content := "[bundle]\nfile = \"Gems.binfile\"\nversions = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "Gems.binfile", cfg.Bundle.File)
	assert.False(t, cfg.Bundle.Versions)
	// Untouched keys keep their defaults
	assert.Equal(t, "gem", cfg.Install.Program)
}

func TestLoadFromYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	content := "install:\n  program: jgem\n  confirm: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "jgem", cfg.Install.Program)
	assert.False(t, cfg.Install.Confirm)
}

func TestLoadFromTOMLWinsOverYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[bundle]\nfile = \"FromToml\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("bundle:\n  file: FromYaml\n"), 0644))

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "FromToml", cfg.Bundle.File)
}

func TestLoadFromBadTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[bundle\nnope"), 0644))

	_, err := config.LoadFrom(dir)
	assert.Error(t, err)
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := config.GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "[bundle]")
	assert.Contains(t, content, "[install]")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "value line should be commented: %q", line)
	}
}
