// Package scriptfile parses companion automation scripts.
package scriptfile

import (
	"strings"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// Ensure Scanner implements domain.ScriptScanner.
var _ domain.ScriptScanner = (*Scanner)(nil)

// Scanner reads the leading header block of companion scripts.
type Scanner struct{}

// New creates a new Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan builds the script model for the given content.
func (s *Scanner) Scan(path string, content []byte) (domain.Script, error) {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")

	firstLine := ""
	if len(lines) > 0 {
		firstLine = lines[0]
	}
	lang := domain.DetectScriptLanguage(path, firstLine)

	return domain.Script{
		Path:     path,
		Language: lang,
		Header:   domain.ParseScriptHeader(lines, lang),
	}, nil
}
