package mdblock

import (
	"reflect"
	"testing"
)

func TestClassifyIndented(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		line        string
		wantContent string
		wantReason  indentedReason
	}{
		{name: "four spaces", line: "    code", wantContent: "code", wantReason: indentedCodeLine},
		{name: "extra indent kept", line: "      code", wantContent: "  code", wantReason: indentedCodeLine},
		{name: "whitespace-only code line", line: "      ", wantContent: "  ", wantReason: indentedCodeLine},
		{name: "blank", line: "", wantReason: indentedBlank},
		{name: "spaces and tabs only", line: "  \t", wantReason: indentedBlank},
		{name: "three spaces", line: "   text", wantReason: indentedInsufficient},
		{name: "no indent", line: "text", wantReason: indentedInsufficient},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			content, reason := classifyIndented(tt.line)
			if reason != tt.wantReason {
				t.Fatalf("classifyIndented(%q) reason = %d, want %d", tt.line, reason, tt.wantReason)
			}
			if content != tt.wantContent {
				t.Errorf("classifyIndented(%q) content = %q, want %q", tt.line, content, tt.wantContent)
			}
		})
	}
}

func TestIndentedCodeBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *Document
	}{
		{
			name:  "single line",
			input: "    x = 1",
			want:  doc(&IndentedCodeBlock{Content: "x = 1"}),
		},
		{
			name:  "internal blank run preserved",
			input: "    a\n\n\n    b",
			want:  doc(&IndentedCodeBlock{Content: "a\n\n\nb"}),
		},
		{
			name:  "pending blanks dropped at close",
			input: "    a\n\ntext",
			want:  doc(&IndentedCodeBlock{Content: "a"}, para("text")),
		},
		{
			name:  "never interrupts a paragraph",
			input: "text\n    more",
			want:  doc(para("text\nmore")),
		},
		{
			name:  "starts after blank line",
			input: "text\n\n    code",
			want:  doc(para("text"), &IndentedCodeBlock{Content: "code"}),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mustParse(t, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) =\n%#v\nwant\n%#v", tt.input, got, tt.want)
			}
		})
	}
}
