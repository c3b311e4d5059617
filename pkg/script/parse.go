package script

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/binfile/pkg/errors"
	"github.com/arthur-debert/binfile/pkg/types"
)

// Parser extracts install directives from Binfile text. Parsing is
// strict: every non-blank, non-comment line must match the install
// pattern, since anything else in the file is either a directive the
// rewriter would silently skip or a typo the user wants to hear about.
type Parser struct {
	program string
	line    *regexp.Regexp
}

// NewParser builds a parser recognizing install lines for the given
// program. The pattern admits an optional `sudo ` prefix, an optional
// `--user-install` flag, the gem name, and an optional quoted version
// pin.
func NewParser(program string) *Parser {
	if program == "" {
		program = DefaultProgram
	}
	pattern := fmt.Sprintf(
		`^(?:sudo\s+)?%s\s+install\s+(?:--user-install\s+)?([A-Za-z0-9][A-Za-z0-9_.\-]*)(?:\s+-v\s+'([0-9][0-9A-Za-z.]*)')?\s*$`,
		regexp.QuoteMeta(program),
	)
	return &Parser{
		program: program,
		line:    regexp.MustCompile(pattern),
	}
}

// Parse returns the directives in file order. Blank lines and lines
// starting with `#` (the shebang included) are skipped. The first
// unmatched line aborts the parse with a PARSE_ERROR carrying the line
// number and text.
func (p *Parser) Parse(text string) ([]types.Directive, error) {
	var directives []types.Directive

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := p.line.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.Newf(errors.ErrParse,
				"line %d is not a recognized install line: %q", i+1, line).
				WithDetail("line", i+1).
				WithDetail("text", line)
		}

		directives = append(directives, types.Directive{
			Name:    m[1],
			Version: m[2],
		})
	}

	return directives, nil
}
