// Package mdblock parses the block structure of Markdown documents.
//
// # Quick Start
//
// Parse returns the block tree of a document:
//
//	doc, err := mdblock.Parse("# Title\n\nSome *text*.\n\n- one\n- two")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, child := range doc.Children {
//	    fmt.Println(child.Kind())
//	}
//
// The parser is total over its input: any string yields a document. The
// only failure mode is container nesting past the configured ceiling,
// reported as ErrNestingTooDeep.
//
// # Block Model
//
// The tree distinguishes container blocks, which hold other blocks, from
// leaf blocks, which hold text:
//
//   - containers: Document, Blockquote, List, ListItem
//   - leaves: Paragraph, Heading, FencedCodeBlock, IndentedCodeBlock,
//     ThematicBreak
//
// Inline structure is out of scope. Paragraph and heading contents come
// back as raw Text nodes for a downstream inline parser to consume.
//
// # Parsing Model
//
// Input is split into lines and fed through a dispatcher that keeps at
// most one block open at a time. Container blocks record their
// marker-stripped content and reparse it recursively when they close, so
// nesting falls out of the same line classifiers at every level.
//
// # Configuration
//
// Functional options tune the parser:
//
//	doc, err := mdblock.Parse(src,
//	    mdblock.WithMaxDepth(20),
//	    mdblock.WithFrontMatter(),
//	)
//
// WithFrontMatter captures a leading YAML section delimited by "---" as a
// FrontMatter node with its decoded fields.
package mdblock
