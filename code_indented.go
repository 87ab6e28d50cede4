package mdblock

import (
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
)

// indentedReason tags the classification of a line against an indented
// code block.
type indentedReason int

const (
	indentedCodeLine indentedReason = iota
	indentedBlank
	indentedInsufficient
)

// classifyIndented checks line for indented-code membership: four or more
// leading spaces make a code line (exactly four are removed, the rest is
// content, including lines that hold only whitespace). Lines under four
// columns are tagged blank or insufficiently indented.
func classifyIndented(line string) (content string, reason indentedReason) {
	if textutil.LeadingSpaces(line) >= 4 {
		return line[4:], indentedCodeLine
	}
	if textutil.IsBlank(line) {
		return "", indentedBlank
	}
	return "", indentedInsufficient
}

// indentedCodeContext accumulates an open indented code block. Blank lines
// are deferred through pendingBlanks: committed only when a later code line
// proves continuation, discarded when the block closes first.
type indentedCodeContext struct {
	lines         []string
	pendingBlanks int
}

func (c *indentedCodeContext) advance(p *parser, line string, depth int) ([]Node, blockContext, error) {
	content, reason := classifyIndented(line)
	switch reason {
	case indentedCodeLine:
		for ; c.pendingBlanks > 0; c.pendingBlanks-- {
			c.lines = append(c.lines, "")
		}
		c.lines = append(c.lines, content)
		return nil, c, nil
	case indentedBlank:
		c.pendingBlanks++
		return nil, c, nil
	default:
		nodes, err := c.close(p, depth)
		if err != nil {
			return nil, nil, err
		}
		opened, next := p.openLine(line, depth)
		return append(nodes, opened...), next, nil
	}
}

func (c *indentedCodeContext) close(*parser, int) ([]Node, error) {
	content := strings.Join(textutil.TrimBlankEdges(c.lines), "\n")
	return []Node{&IndentedCodeBlock{Content: content}}, nil
}
