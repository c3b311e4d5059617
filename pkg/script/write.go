package script

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/binfile/pkg/errors"
)

// WriteFile writes the rendered script atomically: the content lands
// in a temp file next to the target and is renamed into place, so a
// crash never leaves a half-written Binfile. When executable is set
// the file gets mode 0755, otherwise 0644.
func WriteFile(path, content string, executable bool) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".binfile-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create temp file in %s", dir)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.WriteString(content); err != nil {
		cleanup()
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to flush %s", path)
	}

	mode := os.FileMode(0644)
	if executable {
		mode = 0755
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to set mode on %s", path)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", path)
	}
	return nil
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
