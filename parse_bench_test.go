//go:build bench

package mdblock

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	gmtext "github.com/yuin/goldmark/text"
)

func benchmarkDoc() string {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("# Section heading\n\n")
		b.WriteString("A paragraph with several lines\nof plain continuation text\nbefore a list.\n\n")
		b.WriteString("- first item\n- second item\n  - nested item\n\n")
		b.WriteString("> a quoted paragraph\n> spanning two marker lines\n\n")
		b.WriteString("```go\nfunc f() int { return 42 }\n```\n\n")
		b.WriteString("    indented code line\n\n---\n\n")
	}
	return b.String()
}

// BenchmarkParse measures block parsing over a mixed document.
func BenchmarkParse(b *testing.B) {
	src := benchmarkDoc()
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		doc, err := Parse(src)
		if err != nil {
			b.Fatal(err)
		}
		_ = doc
	}
}

// BenchmarkGoldmarkBlocks is a baseline against goldmark's parser on the
// same input. Goldmark also runs inline parsing, so the numbers are not
// directly comparable; the baseline only tracks relative regressions.
func BenchmarkGoldmarkBlocks(b *testing.B) {
	src := []byte(benchmarkDoc())
	md := goldmark.New()
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		node := md.Parser().Parse(gmtext.NewReader(src))
		_ = node
	}
}
