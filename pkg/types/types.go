// Package types holds the data model shared by the scanner, the script
// renderer/parser, and the installer runner.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// PackageRecord is a normalized installed-gem entry: one record per gem
// name, carrying every installed version and the union of the
// executables those versions ship. Records are immutable once built by
// the scanner; gems with no executables never become records.
type PackageRecord struct {
	Name        string
	Versions    []string
	Executables []string
}

// MaxVersion returns the highest version of the record. Versions are
// kept sorted ascending by the scanner, so this is the last entry.
func (r PackageRecord) MaxVersion() string {
	if len(r.Versions) == 0 {
		return ""
	}
	return r.Versions[len(r.Versions)-1]
}

// ExecutableList renders the executables as a comma-separated list for
// the Binfile comment line.
func (r PackageRecord) ExecutableList() string {
	return strings.Join(r.Executables, ", ")
}

// Directive is the normalized form of one install line parsed back out
// of a Binfile: a gem name and an optional version pin. Directives are
// transient; they exist only between parsing and rewriting.
type Directive struct {
	Name    string
	Version string
}

// Mode selects the shape of the rewritten install command.
type Mode int

const (
	// ModePlain rewrites to `gem install NAME`.
	ModePlain Mode = iota
	// ModeElevated rewrites to `sudo gem install NAME`.
	ModeElevated
	// ModeUserScope rewrites to `gem install --user-install NAME`.
	ModeUserScope
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeElevated:
		return "elevated"
	case ModeUserScope:
		return "user-scope"
	default:
		return "plain"
	}
}

// RenderOptions controls how the renderer shapes install lines.
type RenderOptions struct {
	IncludeVersions bool
	UserScope       bool
	Elevate         bool
}

// Mode maps the render flags onto the rewriter's mode enum. Elevate
// wins if both are set; the CLI rejects that combination before it
// gets here.
func (o RenderOptions) Mode() Mode {
	switch {
	case o.Elevate:
		return ModeElevated
	case o.UserScope:
		return ModeUserScope
	default:
		return ModePlain
	}
}

// SortRecords orders records by name, case-insensitively, with the
// original byte order as a tiebreaker so output stays deterministic.
func SortRecords(records []PackageRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := strings.ToLower(records[i].Name), strings.ToLower(records[j].Name)
		if a != b {
			return a < b
		}
		return records[i].Name < records[j].Name
	})
}

// CommandResult is the outcome of one executed install command.
type CommandResult struct {
	Command string
	Success bool
	Output  string
	Err     error
}

func (r CommandResult) String() string {
	if r.Success {
		return fmt.Sprintf("ok: %s", r.Command)
	}
	return fmt.Sprintf("failed: %s", r.Command)
}
