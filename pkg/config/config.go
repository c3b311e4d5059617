// Package config loads binfile configuration: embedded defaults merged
// with an optional user config file from the XDG config directory.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	binerrors "github.com/arthur-debert/binfile/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Bundle holds generate-mode settings.
type Bundle struct {
	File       string `koanf:"file"`
	Versions   bool   `koanf:"versions"`
	Executable bool   `koanf:"executable"`
	Overwrite  bool   `koanf:"overwrite"`
}

// Install holds replay-mode settings.
type Install struct {
	Program string `koanf:"program"`
	Shell   string `koanf:"shell"`
	Confirm bool   `koanf:"confirm"`
}

// Config is the merged configuration for one run.
type Config struct {
	Bundle  Bundle  `koanf:"bundle"`
	Install Install `koanf:"install"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// UserConfigDir is where the user config file lives.
func UserConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "binfile")
}

// Load merges the embedded defaults with the user config file, if one
// exists. TOML is tried first, then YAML.
func Load() (*Config, error) {
	return LoadFrom(UserConfigDir())
}

// LoadFrom merges defaults with config.toml or config.yaml from dir.
// Missing files are not an error; a file that fails to parse is.
func LoadFrom(dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, binerrors.Wrap(err, binerrors.ErrConfigLoad, "failed to load defaults")
	}

	candidates := []struct {
		name   string
		parser koanf.Parser
	}{
		{"config.toml", toml.Parser()},
		{"config.yaml", yaml.Parser()},
	}
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), c.parser); err != nil {
			return nil, binerrors.Wrapf(err, binerrors.ErrConfigParse, "failed to load config from %s", path)
		}
		break
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, binerrors.Wrap(err, binerrors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Default returns the embedded defaults without touching the filesystem.
func Default() *Config {
	k := koanf.New(".")
	// The embedded TOML is compiled in; a parse failure is a build bug.
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return &cfg
}
