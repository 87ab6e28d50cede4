package mdblock

import (
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
)

// listItemNotStartReason tags why a line does not start a list item.
type listItemNotStartReason int

const (
	listItemStarted listItemNotStartReason = iota
	listItemTooIndented
	listItemNoMarker
)

// maxMarkerPadding caps how many spaces after a marker still count toward
// the item's content indent.
const maxMarkerPadding = 4

// listMarker identifies a list's kind: a bullet character, or an ordered
// delimiter plus the first item's ordinal.
type listMarker struct {
	ordered bool
	bullet  byte // '-', '+' or '*' for bullet lists
	delim   byte // '.' or ')' for ordered lists
	start   int  // first ordinal for ordered lists
}

// sameKind reports whether two markers continue the same list: bullets
// must share their character, ordered markers their delimiter.
func (m listMarker) sameKind(o listMarker) bool {
	if m.ordered != o.ordered {
		return false
	}
	if m.ordered {
		return m.delim == o.delim
	}
	return m.bullet == o.bullet
}

// listItemStart is the parsed header of a list-item line. contentIndent is
// the column where the item's content begins: marker indent plus marker
// width plus following spaces, the spaces clamped to maxMarkerPadding.
type listItemStart struct {
	marker        listMarker
	indent        int
	contentIndent int
	content       string
}

// tryListItem classifies line as a list-item start: a bullet from -, + or
// * or a 1-9 digit ordinal followed by . or ), then a space, a tab, or end
// of line, all at indent 0-3.
func tryListItem(line string) (*listItemStart, listItemNotStartReason) {
	indent := textutil.LeadingSpaces(line)
	if indent > 3 {
		return nil, listItemTooIndented
	}
	after := line[indent:]
	if start := tryBulletMarker(after, indent); start != nil {
		start.content = line[start.contentIndent:]
		return start, listItemStarted
	}
	if start := tryOrderedMarker(after, indent); start != nil {
		start.content = line[start.contentIndent:]
		return start, listItemStarted
	}
	return nil, listItemNoMarker
}

func tryBulletMarker(s string, indent int) *listItemStart {
	if s == "" {
		return nil
	}
	char := s[0]
	if char != '-' && char != '+' && char != '*' {
		return nil
	}
	marker := listMarker{bullet: char}
	rest := s[1:]
	if rest == "" {
		// Bare marker: an empty item.
		return &listItemStart{marker: marker, indent: indent, contentIndent: indent + 1}
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return nil
	}
	padding := min(textutil.LeadingSpaces(rest), maxMarkerPadding)
	return &listItemStart{
		marker:        marker,
		indent:        indent,
		contentIndent: indent + 1 + padding,
	}
}

func tryOrderedMarker(s string, indent int) *listItemStart {
	digits := 0
	ordinal := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		ordinal = ordinal*10 + int(s[digits]-'0')
		digits++
	}
	if digits == 0 || digits > 9 || s[0] == '0' {
		return nil
	}
	rest := s[digits:]
	if rest == "" || (rest[0] != '.' && rest[0] != ')') {
		return nil
	}
	marker := listMarker{ordered: true, delim: rest[0], start: ordinal}
	markerWidth := digits + 1
	rest = rest[1:]
	if rest == "" {
		return &listItemStart{marker: marker, indent: indent, contentIndent: indent + markerWidth}
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return nil
	}
	padding := min(textutil.LeadingSpaces(rest), maxMarkerPadding)
	return &listItemStart{
		marker:        marker,
		indent:        indent,
		contentIndent: indent + markerWidth + padding,
	}
}

// itemLine is one recorded content line of a list item. textOnly marks a
// continuation line whose indent-stripped remainder starts at column zero
// and classifies as nothing but paragraph text; the reparse policy keys
// off it.
type itemLine struct {
	text     string
	blank    bool
	textOnly bool
}

// listContext accumulates an open list. Blank lines are never committed
// immediately: pendingBlanks defers them until a continuing line flushes
// them into content (marking the list loose), or the list closes and they
// are discarded. A list closes only on a differing marker kind or
// non-list content, never on blank lines alone.
type listContext struct {
	marker        listMarker
	items         [][]itemLine
	cur           []itemLine
	contentIndent int
	pendingBlanks int
	tight         bool
}

func newListContext(start *listItemStart) *listContext {
	return &listContext{
		marker:        start.marker,
		cur:           []itemLine{{text: start.content}},
		contentIndent: start.contentIndent,
		tight:         true,
	}
}

func (c *listContext) advance(p *parser, line string, depth int) ([]Node, blockContext, error) {
	if textutil.IsBlank(line) {
		c.pendingBlanks++
		return nil, c, nil
	}
	// Continuation wins over new-item detection so that a same-marker line
	// at the content indent opens a nested list instead of a sibling item.
	if textutil.LeadingSpaces(line) >= c.contentIndent {
		c.flushBlanks()
		stripped := line[c.contentIndent:]
		c.cur = append(c.cur, itemLine{text: stripped, textOnly: isTextOnly(stripped)})
		return nil, c, nil
	}
	if start, reason := tryListItem(line); reason == listItemStarted && start.marker.sameKind(c.marker) {
		if c.pendingBlanks > 0 {
			c.tight = false
			c.pendingBlanks = 0
		}
		c.items = append(c.items, c.cur)
		c.cur = []itemLine{{text: start.content}}
		c.contentIndent = start.contentIndent
		return nil, c, nil
	}
	nodes, err := c.close(p, depth)
	if err != nil {
		return nil, nil, err
	}
	opened, next := p.openLine(line, depth)
	return append(nodes, opened...), next, nil
}

// flushBlanks commits deferred blank lines into the current item, which is
// what makes the list loose.
func (c *listContext) flushBlanks() {
	if c.pendingBlanks == 0 {
		return
	}
	c.tight = false
	for ; c.pendingBlanks > 0; c.pendingBlanks-- {
		c.cur = append(c.cur, itemLine{blank: true})
	}
}

func (c *listContext) close(p *parser, depth int) ([]Node, error) {
	items := append(c.items, c.cur)
	list := &List{
		Ordered: c.marker.ordered,
		Start:   c.marker.start,
		Tight:   c.tight,
		Items:   make([]*ListItem, 0, len(items)),
	}
	for _, lines := range items {
		children, err := p.parseItemLines(lines, depth)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, &ListItem{Children: children})
	}
	return []Node{list}, nil
}

// isTextOnly reports whether a stripped continuation line is pure
// paragraph text at column zero. Lines with residual indentation or a
// block start of their own keep the item on the joined-reparse path.
func isTextOnly(stripped string) bool {
	if stripped == "" || stripped[0] == ' ' || stripped[0] == '\t' {
		return false
	}
	return !startsBlockLine(stripped)
}

// startsBlockLine reports whether s classifies as the start of any block
// other than a paragraph.
func startsBlockLine(s string) bool {
	if textutil.LeadingSpaces(s) >= 4 {
		return true
	}
	if _, reason := tryFenceStart(s); reason == fenceOpened {
		return true
	}
	if isThematicBreak(s) {
		return true
	}
	if _, ok := tryATXHeading(s); ok {
		return true
	}
	if _, ok := tryBlockquoteMarker(s); ok {
		return true
	}
	if _, reason := tryListItem(s); reason == listItemStarted {
		return true
	}
	return false
}

// parseItemLines turns one item's recorded lines into child blocks using
// the per-item reparse policy:
//
//   - reparse joined: no line is text-only, so the whole item reparses as
//     one block. This keeps a deeply indented line after blank lines inside
//     a nested list recognized as list continuation, never as indented
//     code.
//   - reparse chunked: some line is text-only, so blank-delimited chunks
//     reparse independently. This terminates a trailing loose paragraph
//     before content that belongs to the enclosing container.
func (p *parser) parseItemLines(lines []itemLine, depth int) ([]Node, error) {
	anyTextOnly := false
	for _, l := range lines {
		if l.textOnly {
			anyTextOnly = true
			break
		}
	}
	if !anyTextOnly {
		return p.parseBlocks(joinItemLines(lines), depth+1)
	}
	var children []Node
	var chunk []itemLine
	reparse := func() error {
		if len(chunk) == 0 {
			return nil
		}
		nodes, err := p.parseBlocks(joinItemLines(chunk), depth+1)
		if err != nil {
			return err
		}
		children = append(children, nodes...)
		chunk = chunk[:0]
		return nil
	}
	for _, l := range lines {
		if l.blank {
			if err := reparse(); err != nil {
				return nil, err
			}
			continue
		}
		chunk = append(chunk, l)
	}
	if err := reparse(); err != nil {
		return nil, err
	}
	return children, nil
}

func joinItemLines(lines []itemLine) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	return strings.Join(texts, "\n")
}
