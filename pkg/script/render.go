// Package script owns the Binfile text format: rendering package
// records to the line-oriented script, parsing a script back into
// install directives, and rewriting directives as shell commands.
package script

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/binfile/pkg/types"
)

// Header is the first line of every generated Binfile. Each install
// line is a valid shell command, so the file runs as a script on its
// own.
const Header = "#!/usr/bin/env bash"

// DefaultProgram is the install program rendered and recognized unless
// configuration says otherwise.
const DefaultProgram = "gem"

// Renderer turns package records into Binfile text.
type Renderer struct {
	program string
	opts    types.RenderOptions
}

// NewRenderer creates a renderer for the given install program. An
// empty program falls back to DefaultProgram.
func NewRenderer(program string, opts types.RenderOptions) *Renderer {
	if program == "" {
		program = DefaultProgram
	}
	return &Renderer{program: program, opts: opts}
}

// Render produces the full Binfile: header, then one blank-separated
// group per record with its executables comment and install line.
func (r *Renderer) Render(records []types.PackageRecord) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")

	for _, rec := range records {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("# Executables: %s\n", rec.ExecutableList()))
		b.WriteString(r.InstallLine(rec))
		b.WriteString("\n")
	}

	return b.String()
}

// InstallLine renders the install command for one record under the
// renderer's options.
func (r *Renderer) InstallLine(rec types.PackageRecord) string {
	var b strings.Builder
	if r.opts.Elevate {
		b.WriteString("sudo ")
	}
	b.WriteString(r.program)
	b.WriteString(" install")
	if r.opts.UserScope {
		b.WriteString(" --user-install")
	}
	b.WriteString(" ")
	b.WriteString(rec.Name)
	if r.opts.IncludeVersions {
		if v := rec.MaxVersion(); v != "" {
			b.WriteString(fmt.Sprintf(" -v '%s'", v))
		}
	}
	return b.String()
}
