package mdblock

import "testing"

func TestTryFenceStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantReason fenceNotStartReason
		wantChar   byte
		wantLength int
		wantIndent int
		wantInfo   string
	}{
		{name: "three backticks", line: "```", wantReason: fenceOpened, wantChar: '`', wantLength: 3},
		{name: "three tildes", line: "~~~", wantReason: fenceOpened, wantChar: '~', wantLength: 3},
		{name: "info string", line: "```go", wantReason: fenceOpened, wantChar: '`', wantLength: 3, wantInfo: "go"},
		{name: "info string trimmed", line: "~~~  ruby  ", wantReason: fenceOpened, wantChar: '~', wantLength: 3, wantInfo: "ruby"},
		{name: "long fence", line: "`````", wantReason: fenceOpened, wantChar: '`', wantLength: 5},
		{name: "indented fence", line: "  ```", wantReason: fenceOpened, wantChar: '`', wantLength: 3, wantIndent: 2},
		{name: "tilde info may hold backtick", line: "~~~ a`b", wantReason: fenceOpened, wantChar: '~', wantLength: 3, wantInfo: "a`b"},
		{name: "backtick info with backtick", line: "``` a`b", wantReason: fenceBacktickInfo},
		{name: "two backticks", line: "``", wantReason: fenceAbsent},
		{name: "four leading spaces", line: "    ```", wantReason: fenceTooIndented},
		{name: "plain text", line: "code", wantReason: fenceAbsent},
		{name: "empty line", line: "", wantReason: fenceAbsent},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, reason := tryFenceStart(tt.line)
			if reason != tt.wantReason {
				t.Fatalf("tryFenceStart(%q) reason = %d, want %d", tt.line, reason, tt.wantReason)
			}
			if reason != fenceOpened {
				return
			}
			if start.char != tt.wantChar {
				t.Errorf("char = %q, want %q", start.char, tt.wantChar)
			}
			if start.length != tt.wantLength {
				t.Errorf("length = %d, want %d", start.length, tt.wantLength)
			}
			if start.indent != tt.wantIndent {
				t.Errorf("indent = %d, want %d", start.indent, tt.wantIndent)
			}
			switch {
			case tt.wantInfo == "" && start.info != nil:
				t.Errorf("info = %q, want nil", *start.info)
			case tt.wantInfo != "" && start.info == nil:
				t.Errorf("info = nil, want %q", tt.wantInfo)
			case tt.wantInfo != "" && *start.info != tt.wantInfo:
				t.Errorf("info = %q, want %q", *start.info, tt.wantInfo)
			}
		})
	}
}

func TestFenceCloses(t *testing.T) {
	t.Parallel()

	opening := fenceStart{char: '`', length: 3}

	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "exact match", line: "```", want: true},
		{name: "longer run", line: "`````", want: true},
		{name: "trailing spaces", line: "```   ", want: true},
		{name: "indented up to three", line: "   ```", want: true},
		{name: "shorter run", line: "``", want: false},
		{name: "wrong character", line: "~~~", want: false},
		{name: "trailing text", line: "``` go", want: false},
		{name: "four leading spaces", line: "    ```", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := opening.closes(tt.line); got != tt.want {
				t.Errorf("closes(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
