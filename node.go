package mdblock

// NodeKind identifies the concrete type of a block tree node.
type NodeKind int

// Node kinds, in rough document-structure order.
const (
	KindDocument NodeKind = iota
	KindFrontMatter
	KindParagraph
	KindHeading
	KindBlockquote
	KindList
	KindListItem
	KindFencedCodeBlock
	KindIndentedCodeBlock
	KindThematicBreak
	KindText
)

// String returns the kind name for debugging and test output.
func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindFrontMatter:
		return "FrontMatter"
	case KindParagraph:
		return "Paragraph"
	case KindHeading:
		return "Heading"
	case KindBlockquote:
		return "Blockquote"
	case KindList:
		return "List"
	case KindListItem:
		return "ListItem"
	case KindFencedCodeBlock:
		return "FencedCodeBlock"
	case KindIndentedCodeBlock:
		return "IndentedCodeBlock"
	case KindThematicBreak:
		return "ThematicBreak"
	case KindText:
		return "Text"
	}
	return "Unknown"
}

// Node is a block tree node. Parse returns a fully assembled tree; callers
// must treat it as immutable. Children of every container are in document
// order.
type Node interface {
	Kind() NodeKind
}

// Document is the root of every parsed tree.
type Document struct {
	Children []Node
}

// Paragraph holds one run of inline source as a single Text child.
type Paragraph struct {
	Children []Node
}

// Heading is an ATX or setext heading. Level is always in 1..6.
type Heading struct {
	Level    int
	Children []Node
}

// Blockquote holds the blocks parsed from marker-stripped quoted content.
type Blockquote struct {
	Children []Node
}

// List is a bullet or ordered list. Start is the first item's ordinal for
// ordered lists and 0 otherwise. Tight lists render item content without
// wrapping paragraph blocks; looseness is decided once the list closes.
type List struct {
	Ordered bool
	Start   int
	Tight   bool
	Items   []*ListItem
}

// ListItem holds the blocks parsed from one item's indent-stripped content.
type ListItem struct {
	Children []Node
}

// FencedCodeBlock is a backtick- or tilde-fenced code block. Info is nil
// when the opening fence carried no info string, never the empty string.
// Content is byte-exact after fence-indent removal, including internal
// blank lines.
type FencedCodeBlock struct {
	Info    *string
	Content string
}

// IndentedCodeBlock is a four-space-indented code block. Content has the
// four-column block indentation removed and leading/trailing blank runs
// trimmed; internal blank lines are preserved.
type IndentedCodeBlock struct {
	Content string
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

// Text carries unparsed inline Markdown exactly as it appeared after
// block-level stripping. Inline parsing is the caller's responsibility.
type Text struct {
	Content string
}

// FrontMatter is the optional YAML metadata block (see WithFrontMatter).
// Source is the raw YAML between the delimiters; Fields is the decoded
// mapping, nil when the YAML is empty or malformed.
type FrontMatter struct {
	Source string
	Fields map[string]any
}

func (*Document) Kind() NodeKind          { return KindDocument }
func (*FrontMatter) Kind() NodeKind       { return KindFrontMatter }
func (*Paragraph) Kind() NodeKind         { return KindParagraph }
func (*Heading) Kind() NodeKind           { return KindHeading }
func (*Blockquote) Kind() NodeKind        { return KindBlockquote }
func (*List) Kind() NodeKind              { return KindList }
func (*ListItem) Kind() NodeKind          { return KindListItem }
func (*FencedCodeBlock) Kind() NodeKind   { return KindFencedCodeBlock }
func (*IndentedCodeBlock) Kind() NodeKind { return KindIndentedCodeBlock }
func (*ThematicBreak) Kind() NodeKind     { return KindThematicBreak }
func (*Text) Kind() NodeKind              { return KindText }
