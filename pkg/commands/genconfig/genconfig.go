// Package genconfig implements the gen-config command.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/binfile/pkg/config"
	"github.com/arthur-debert/binfile/pkg/errors"
	"github.com/arthur-debert/binfile/pkg/logging"
)

// Options holds options for the gen-config command
type Options struct {
	// Write puts the config under dir instead of returning it.
	Write bool
	// Dir overrides the target directory; empty means the user config
	// dir.
	Dir string
}

// Result reports what gen-config produced.
type Result struct {
	Content     string
	FileWritten string
}

// GenConfig renders the default configuration with values commented
// out, optionally writing it to the config directory. An existing
// config file is never overwritten.
func GenConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	content, err := config.GenerateConfigContent()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render default config")
	}

	result := &Result{Content: content}
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = config.UserConfigDir()
	}
	target := filepath.Join(dir, "config.toml")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory %s", dir)
	}

	if _, err := os.Stat(target); err == nil {
		logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", target)
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.FileWritten = target
	return result, nil
}
