package script

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/binfile/pkg/types"
)

// Rewrite maps directives to install command strings under the given
// mode. Pure mapping; no error conditions.
func Rewrite(directives []types.Directive, mode types.Mode, includeVersions bool, program string) []string {
	if program == "" {
		program = DefaultProgram
	}

	commands := make([]string, 0, len(directives))
	for _, d := range directives {
		commands = append(commands, rewriteOne(d, mode, includeVersions, program))
	}
	return commands
}

func rewriteOne(d types.Directive, mode types.Mode, includeVersions bool, program string) string {
	var b strings.Builder
	if mode == types.ModeElevated {
		b.WriteString("sudo ")
	}
	b.WriteString(program)
	b.WriteString(" install")
	if mode == types.ModeUserScope {
		b.WriteString(" --user-install")
	}
	b.WriteString(" ")
	b.WriteString(d.Name)
	if includeVersions && d.Version != "" {
		b.WriteString(fmt.Sprintf(" -v '%s'", d.Version))
	}
	return b.String()
}
