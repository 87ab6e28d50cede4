package mdblock

import (
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
)

// isThematicBreak reports whether line is a thematic break: a run of three
// or more identical characters from -, _ or *, with only spaces and tabs
// allowed between them, indented at most three columns.
func isThematicBreak(line string) bool {
	if textutil.Indent(line) > 3 {
		return false
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	marker := trimmed[0]
	if marker != '*' && marker != '-' && marker != '_' {
		return false
	}
	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case marker:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}
