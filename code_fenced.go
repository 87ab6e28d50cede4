package mdblock

import (
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
)

// fenceNotStartReason tags why a line does not open a fenced code block.
type fenceNotStartReason int

const (
	fenceOpened fenceNotStartReason = iota
	fenceTooIndented
	fenceAbsent
	fenceBacktickInfo
)

// fenceStart records the opening fence of a fenced code block; its fields
// drive both content stripping and closing-fence matching.
type fenceStart struct {
	char   byte // '`' or '~'
	length int
	indent int
	info   *string
}

// tryFenceStart classifies line as an opening code fence: at least three
// backticks or tildes at indent 0-3. The trimmed remainder is the info
// string; a backtick fence's info string must not itself contain a
// backtick.
func tryFenceStart(line string) (*fenceStart, fenceNotStartReason) {
	indent := textutil.LeadingSpaces(line)
	if indent > 3 {
		return nil, fenceTooIndented
	}
	after := line[indent:]
	if after == "" {
		return nil, fenceAbsent
	}
	char := after[0]
	if char != '`' && char != '~' {
		return nil, fenceAbsent
	}
	length := countLeading(after, char)
	if length < 3 {
		return nil, fenceAbsent
	}
	start := &fenceStart{char: char, length: length, indent: indent}
	if info := strings.TrimSpace(after[length:]); info != "" {
		if char == '`' && strings.ContainsRune(info, '`') {
			return nil, fenceBacktickInfo
		}
		start.info = &info
	}
	return start, fenceOpened
}

// closes reports whether line is a valid closing fence: the same character
// repeated at least as often as the opening fence, indent 0-3, nothing but
// trailing spaces after it.
func (f *fenceStart) closes(line string) bool {
	indent := textutil.LeadingSpaces(line)
	if indent > 3 {
		return false
	}
	after := line[indent:]
	run := countLeading(after, f.char)
	return run >= f.length && strings.TrimSpace(after[run:]) == ""
}

// fencedCodeContext accumulates the content of an open fenced code block.
// Every line is content until a valid closing fence or end of input; lines
// that merely resemble a closer stay content.
type fencedCodeContext struct {
	start fenceStart
	lines []string
}

func (c *fencedCodeContext) advance(p *parser, line string, depth int) ([]Node, blockContext, error) {
	if c.start.closes(line) {
		node, err := c.close(p, depth)
		return node, nil, err
	}
	c.lines = append(c.lines, textutil.TrimIndent(line, c.start.indent))
	return nil, c, nil
}

func (c *fencedCodeContext) close(*parser, int) ([]Node, error) {
	node := &FencedCodeBlock{
		Info:    c.start.info,
		Content: strings.Join(c.lines, "\n"),
	}
	return []Node{node}, nil
}

// countLeading returns the length of the run of ch at the start of s.
func countLeading(s string, ch byte) int {
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	return n
}
