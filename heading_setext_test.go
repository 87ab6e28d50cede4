package mdblock

import "testing"

func TestClassifySetext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantLevel  int
		wantReason setextReason
	}{
		{name: "equals underline", line: "===", wantLevel: 1, wantReason: setextUnderline},
		{name: "single equals", line: "=", wantLevel: 1, wantReason: setextUnderline},
		{name: "dash underline", line: "---", wantLevel: 2, wantReason: setextUnderline},
		{name: "single dash", line: "-", wantLevel: 2, wantReason: setextUnderline},
		{name: "trailing spaces allowed", line: "====  ", wantLevel: 1, wantReason: setextUnderline},
		{name: "three leading spaces", line: "   ---", wantLevel: 2, wantReason: setextUnderline},
		{name: "four leading spaces", line: "    ---", wantReason: setextTooIndented},
		{name: "blank line", line: "  ", wantReason: setextBlank},
		{name: "wrong character", line: "***", wantReason: setextWrongChar},
		{name: "mixed characters", line: "-=-", wantReason: setextMixedChars},
		{name: "internal space", line: "- -", wantReason: setextMixedChars},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			level, reason := classifySetext(tt.line)
			if reason != tt.wantReason {
				t.Fatalf("classifySetext(%q) reason = %d, want %d", tt.line, reason, tt.wantReason)
			}
			if level != tt.wantLevel {
				t.Errorf("classifySetext(%q) level = %d, want %d", tt.line, level, tt.wantLevel)
			}
		})
	}
}
