package mdblock

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdblock/internal/textutil"
)

// DefaultMaxDepth bounds container nesting before Parse gives up with
// ErrNestingTooDeep.
const DefaultMaxDepth = 100

type config struct {
	maxDepth    int
	frontMatter bool
}

// Option configures Parse.
type Option func(*config)

// WithMaxDepth sets the container nesting ceiling. It panics if n < 1,
// since a parser that can open no container is a programmer error.
func WithMaxDepth(n int) Option {
	if n < 1 {
		panic("mdblock: max depth must be at least 1")
	}
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithFrontMatter enables YAML front matter extraction. When the first
// line of the input is exactly "---", lines up to a closing "---" or
// "..." are captured as a FrontMatter node instead of being parsed as
// blocks.
func WithFrontMatter() Option {
	return func(c *config) {
		c.frontMatter = true
	}
}

// blockContext is the single open block the dispatcher feeds lines to.
// advance consumes one line and returns any closed nodes plus the context
// that remains open, nil when the line closed everything. close flushes
// the context at end of input.
type blockContext interface {
	advance(p *parser, line string, depth int) ([]Node, blockContext, error)
	close(p *parser, depth int) ([]Node, error)
}

type parser struct {
	cfg config
}

// Parse builds the block tree of a Markdown document. It accepts any
// input and is deterministic; the only error it returns is
// ErrNestingTooDeep, when containers nest past the configured ceiling.
func Parse(source string, opts ...Option) (*Document, error) {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &parser{cfg: cfg}

	source = textutil.NormalizeNewlines(source)

	var children []Node
	if cfg.frontMatter {
		if fm, rest, ok := extractFrontMatter(source); ok {
			children = append(children, fm)
			source = rest
		}
	}

	nodes, err := p.parseBlocks(source, 0)
	if err != nil {
		return nil, err
	}
	return &Document{Children: append(children, nodes...)}, nil
}

// parseBlocks runs the line dispatcher over source. Container contexts
// reenter it on their recorded content with depth+1.
func (p *parser) parseBlocks(source string, depth int) ([]Node, error) {
	if depth >= p.cfg.maxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrNestingTooDeep, p.cfg.maxDepth)
	}

	var nodes []Node
	var open blockContext
	for _, line := range textutil.SplitLines(source) {
		if open == nil {
			opened, next := p.openLine(line, depth)
			nodes = append(nodes, opened...)
			open = next
			continue
		}
		closed, next, err := open.advance(p, line, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, closed...)
		open = next
	}
	if open != nil {
		closed, err := open.close(p, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, closed...)
	}
	return nodes, nil
}

// openLine classifies a line with no block open. Leaf blocks that close
// immediately come back as nodes; everything else opens a context. The
// order is fixed: fenced code, thematic break, blockquote, ATX heading,
// list item, indented code, then paragraph. Setext underlines only mean
// anything inside an open paragraph, so they are absent here.
func (p *parser) openLine(line string, depth int) ([]Node, blockContext) {
	if textutil.IsBlank(line) {
		return nil, nil
	}
	if start, reason := tryFenceStart(line); reason == fenceOpened {
		return nil, &fencedCodeContext{start: *start}
	}
	if isThematicBreak(line) {
		return []Node{&ThematicBreak{}}, nil
	}
	if content, ok := tryBlockquoteMarker(line); ok {
		return nil, newBlockquoteContext(content)
	}
	if h, ok := tryATXHeading(line); ok {
		return []Node{h}, nil
	}
	if start, reason := tryListItem(line); reason == listItemStarted {
		return nil, newListContext(start)
	}
	if content, reason := classifyIndented(line); reason == indentedCodeLine {
		return nil, &indentedCodeContext{lines: []string{content}}
	}
	return nil, &paragraphContext{lines: []string{strings.TrimSpace(line)}}
}
