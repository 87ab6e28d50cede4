package mdblock

import (
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
)

// tryATXHeading classifies line as an ATX heading: one to six # characters
// at indent 0-3 followed by a space, a tab, or end of line. A trailing run
// of # preceded by whitespace is a closing sequence and is stripped from
// the content. Seven or more # never form a heading.
func tryATXHeading(line string) (*Heading, bool) {
	if textutil.Indent(line) > 3 {
		return nil, false
	}
	trimmed := strings.TrimSpace(line)
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return nil, false
	}
	rest := trimmed[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, false
	}
	content := stripClosingHashes(strings.TrimSpace(rest))
	return &Heading{Level: level, Children: []Node{&Text{Content: content}}}, true
}

// stripClosingHashes removes a trailing closing # sequence. The sequence
// only counts when preceded by a space or tab (or when the content is
// nothing but hashes); otherwise the hashes belong to the text.
func stripClosingHashes(s string) string {
	withoutHashes := strings.TrimRight(s, "#")
	if len(withoutHashes) == len(s) {
		return s
	}
	if withoutHashes == "" {
		return ""
	}
	if last := withoutHashes[len(withoutHashes)-1]; last == ' ' || last == '\t' {
		return strings.TrimRight(withoutHashes, " \t")
	}
	return s
}
