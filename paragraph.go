package mdblock

import (
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
)

// paragraphContext collects the trimmed lines of an open paragraph.
type paragraphContext struct {
	lines []string
}

func (c *paragraphContext) advance(p *parser, line string, depth int) ([]Node, blockContext, error) {
	if textutil.IsBlank(line) {
		nodes, _ := c.close(p, depth)
		return nodes, nil, nil
	}
	if start, reason := tryFenceStart(line); reason == fenceOpened {
		nodes, _ := c.close(p, depth)
		return nodes, &fencedCodeContext{start: *start}, nil
	}
	// A setext underline converts the paragraph instead of closing it, and
	// must win over the thematic-break reading of "---".
	if level, reason := classifySetext(line); reason == setextUnderline {
		heading := &Heading{
			Level:    level,
			Children: []Node{&Text{Content: strings.Join(c.lines, "\n")}},
		}
		return []Node{heading}, nil, nil
	}
	if isThematicBreak(line) {
		nodes, _ := c.close(p, depth)
		return append(nodes, &ThematicBreak{}), nil, nil
	}
	if heading, ok := tryATXHeading(line); ok {
		nodes, _ := c.close(p, depth)
		return append(nodes, heading), nil, nil
	}
	if content, ok := tryBlockquoteMarker(line); ok {
		nodes, _ := c.close(p, depth)
		return nodes, newBlockquoteContext(content), nil
	}
	// Lists interrupt paragraphs, but only with a non-empty first item.
	if start, reason := tryListItem(line); reason == listItemStarted && start.content != "" {
		nodes, _ := c.close(p, depth)
		return nodes, newListContext(start), nil
	}
	c.lines = append(c.lines, strings.TrimSpace(line))
	return nil, c, nil
}

func (c *paragraphContext) close(*parser, int) ([]Node, error) {
	text := strings.Join(c.lines, "\n")
	return []Node{&Paragraph{Children: []Node{&Text{Content: text}}}}, nil
}

// interruptsParagraph reports whether line would end an open paragraph by
// starting a block of its own. Blank lines, setext underlines, empty list
// markers and indented-code lines are deliberately absent: the first two
// are handled by the paragraph evaluator itself, the last two never
// interrupt a paragraph.
func interruptsParagraph(line string) bool {
	if _, reason := tryFenceStart(line); reason == fenceOpened {
		return true
	}
	if isThematicBreak(line) {
		return true
	}
	if _, ok := tryATXHeading(line); ok {
		return true
	}
	if _, ok := tryBlockquoteMarker(line); ok {
		return true
	}
	if start, reason := tryListItem(line); reason == listItemStarted && start.content != "" {
		return true
	}
	return false
}
