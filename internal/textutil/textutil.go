// Package textutil provides the line and indentation primitives shared by
// the block parser.
package textutil

import (
	"regexp"
	"strings"
)

// crlfOrCR matches Windows (\r\n) and old Mac (\r) line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeNewlines converts CRLF and CR line endings to LF.
func NormalizeNewlines(s string) string {
	return crlfOrCR.ReplaceAllString(s, "\n")
}

// SplitLines splits s into lines without their terminators. A single
// trailing newline produces no extra empty line, so "a\n" yields one line
// and "a\n\n" yields a line followed by one blank line. Empty input yields
// no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsBlank reports whether s contains nothing but spaces and tabs.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LeadingSpaces returns the number of leading space characters.
func LeadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

// Indent returns the indentation width of s in columns, counting a space
// as one column and a tab as four, stopping at the first other character.
func Indent(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			w++
		case '\t':
			w += 4
		default:
			return w
		}
	}
	return w
}

// TrimIndent removes up to n leading spaces from s. Tabs are left alone.
func TrimIndent(s string, n int) string {
	remove := min(LeadingSpaces(s), n)
	return s[remove:]
}

// TrimBlankEdges drops leading and trailing blank lines, preserving
// internal blank runs.
func TrimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && IsBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && IsBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}
