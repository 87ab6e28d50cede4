package mdblock

import (
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
)

// tryBlockquoteMarker classifies line as a blockquote marker line: a >
// at indent 0-3. The marker and at most one following space or tab are
// stripped; the remainder is the quoted content for that line.
func tryBlockquoteMarker(line string) (content string, ok bool) {
	if textutil.Indent(line) > 3 {
		return "", false
	}
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ">") {
		return "", false
	}
	rest := trimmed[1:]
	if rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
		rest = rest[1:]
	}
	return rest, true
}

// blockquoteContext collects the marker-stripped lines of an open
// blockquote. lazyOK tracks whether the quote's innermost open content is
// still a paragraph, which is what entitles a markerless line to lazy
// continuation.
type blockquoteContext struct {
	lines  []string
	lazyOK bool
}

func newBlockquoteContext(content string) *blockquoteContext {
	return &blockquoteContext{lines: []string{content}, lazyOK: lazyAnchor(content)}
}

func (c *blockquoteContext) advance(p *parser, line string, depth int) ([]Node, blockContext, error) {
	if content, ok := tryBlockquoteMarker(line); ok {
		c.lines = append(c.lines, content)
		c.lazyOK = lazyAnchor(content)
		return nil, c, nil
	}
	// Lazy continuation: a markerless line keeps the quote open only while
	// a paragraph is the innermost open content and the line itself would
	// continue a paragraph rather than start a block.
	if !textutil.IsBlank(line) && c.lazyOK && !interruptsParagraph(line) {
		c.lines = append(c.lines, line)
		return nil, c, nil
	}
	nodes, err := c.close(p, depth)
	if err != nil {
		return nil, nil, err
	}
	opened, next := p.openLine(line, depth)
	return append(nodes, opened...), next, nil
}

// close reparses the stripped content through the full dispatcher; nested
// quotes come out for free because the marker classifier fires again
// inside the recursive call.
func (c *blockquoteContext) close(p *parser, depth int) ([]Node, error) {
	children, err := p.parseBlocks(strings.Join(c.lines, "\n"), depth+1)
	if err != nil {
		return nil, err
	}
	return []Node{&Blockquote{Children: children}}, nil
}

// lazyAnchor reports whether a quoted content line leaves a paragraph open
// as the innermost content. Nested quote and list markers are stripped
// first so that lazy continuation reaches through them, matching how the
// recursive reparse will nest the paragraph.
func lazyAnchor(content string) bool {
	for {
		if rest, ok := tryBlockquoteMarker(content); ok {
			content = rest
			continue
		}
		if start, reason := tryListItem(content); reason == listItemStarted {
			content = start.content
			continue
		}
		break
	}
	if textutil.IsBlank(content) || textutil.LeadingSpaces(content) >= 4 {
		return false
	}
	if _, reason := tryFenceStart(content); reason == fenceOpened {
		return false
	}
	if isThematicBreak(content) {
		return false
	}
	if _, ok := tryATXHeading(content); ok {
		return false
	}
	return true
}
