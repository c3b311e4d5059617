// Package gems queries the local RubyGems installation for installed
// gem specifications.
package gems

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/binfile/pkg/errors"
	"github.com/arthur-debert/binfile/pkg/logging"
)

// RawSpec is one installed gem specification as reported by RubyGems:
// a single (name, version) pair with the executables that version
// ships. The same name appears once per installed version.
type RawSpec struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Executables []string `json:"executables"`
}

// SpecSource yields the full set of installed gem specifications.
type SpecSource interface {
	InstalledSpecs(ctx context.Context) ([]RawSpec, error)
}

// specScript is the Ruby one-liner that projects Gem::Specification
// into the JSON shape RawSpec decodes.
const specScript = `require "json"; puts JSON.generate(Gem::Specification.map { |s| { "name" => s.name, "version" => s.version.to_s, "executables" => s.executables } })`

// GemSource reads installed specs by running a Ruby one-liner against
// the local RubyGems installation.
type GemSource struct {
	logger zerolog.Logger

	// query runs the spec script and returns its stdout. Overridable
	// in tests.
	query func(ctx context.Context) ([]byte, error)
}

// NewGemSource creates a source backed by the local ruby interpreter.
func NewGemSource() *GemSource {
	s := &GemSource{
		logger: logging.GetLogger("gems.source"),
	}
	s.query = s.runRuby
	return s
}

// InstalledSpecs returns every installed gem spec. A failure to reach
// RubyGems is fatal for the run; there is nothing to inventory without
// the metadata.
func (s *GemSource) InstalledSpecs(ctx context.Context) ([]RawSpec, error) {
	out, err := s.query(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSpecQuery, "failed to query installed gem specifications")
	}

	var specs []RawSpec
	if err := json.Unmarshal(bytes.TrimSpace(out), &specs); err != nil {
		return nil, errors.Wrap(err, errors.ErrSpecDecode, "failed to decode gem specification output")
	}

	s.logger.Debug().Int("specs", len(specs)).Msg("Loaded installed gem specifications")
	return specs, nil
}

func (s *GemSource) runRuby(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ruby", "-rrubygems", "-e", specScript)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.LogCommand("ruby", []string{"-rrubygems", "-e", "<spec script>"})

	if err := cmd.Run(); err != nil {
		s.logger.Error().
			Err(err).
			Str("stderr", stderr.String()).
			Msg("gem specification query failed")
		return nil, err
	}
	return stdout.Bytes(), nil
}
