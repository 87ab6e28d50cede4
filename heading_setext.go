package mdblock

import (
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
)

// setextReason tags why a line is, or is not, a setext heading underline.
type setextReason int

const (
	setextUnderline setextReason = iota
	setextTooIndented
	setextBlank
	setextWrongChar
	setextMixedChars
)

// classifySetext checks line for a setext underline: a pure run of = (level
// one) or - (level two) at indent 0-3, trailing spaces allowed. The result
// is only meaningful while a paragraph is open; the dispatcher never
// consults it otherwise.
func classifySetext(line string) (level int, reason setextReason) {
	if textutil.Indent(line) > 3 {
		return 0, setextTooIndented
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, setextBlank
	}
	switch trimmed[0] {
	case '=':
		level = 1
	case '-':
		level = 2
	default:
		return 0, setextWrongChar
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != trimmed[0] {
			return 0, setextMixedChars
		}
	}
	return level, setextUnderline
}
