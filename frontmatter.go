package mdblock

import (
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
	"github.com/alnah/go-mdblock/internal/yamlutil"
)

// extractFrontMatter splits a leading YAML front matter section off
// source. The section must open with "---" as the very first line and
// close with "---" or "..." on a line of its own; an unclosed opener is
// not front matter and the whole input falls through to block parsing.
//
// Malformed YAML does not fail the parse: Source always carries the raw
// section, Fields stays nil when it cannot be decoded.
func extractFrontMatter(source string) (*FrontMatter, string, bool) {
	lines := textutil.SplitLines(source)
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != "---" {
		return nil, source, false
	}
	for i := 1; i < len(lines); i++ {
		closer := strings.TrimRight(lines[i], " \t")
		if closer != "---" && closer != "..." {
			continue
		}
		raw := strings.Join(lines[1:i], "\n")
		fm := &FrontMatter{Source: raw}
		var fields map[string]any
		if err := yamlutil.Unmarshal([]byte(raw), &fields); err == nil && len(fields) > 0 {
			fm.Fields = fields
		}
		return fm, strings.Join(lines[i+1:], "\n"), true
	}
	return nil, source, false
}
