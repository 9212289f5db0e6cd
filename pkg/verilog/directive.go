package verilog

import (
	"regexp"
	"strings"
)

// directivePattern matches a conditional directive plus trailing whitespace.
const directivePattern = "(?:`ifn?def\\s*\\w+|`endif)\\s*"

var (
	directiveRegexp         = regexp.MustCompile(directivePattern)
	anchoredDirectiveRegexp = regexp.MustCompile(`^` + directivePattern)
)

// MatchDirective matches a directive starting exactly at offset in text.
// It returns the token without surrounding whitespace and the offset just
// past the match, trailing whitespace included.
func MatchDirective(text string, offset int) (token string, end int, ok bool) {
	if offset < 0 || offset > len(text) {
		return "", offset, false
	}
	loc := anchoredDirectiveRegexp.FindStringIndex(text[offset:])
	if loc == nil {
		return "", offset, false
	}
	return strings.TrimSpace(text[offset : offset+loc[1]]), offset + loc[1], true
}

// findDirective finds the first directive at or after offset. start is the
// offset of the token, end is past its trailing whitespace.
func findDirective(text string, offset int) (token string, start, end int, ok bool) {
	loc := directiveRegexp.FindStringIndex(text[offset:])
	if loc == nil {
		return "", 0, 0, false
	}
	start, end = offset+loc[0], offset+loc[1]
	return strings.TrimSpace(text[start:end]), start, end, true
}

// isOpenDirective reports whether token opens a conditional (`ifdef/`ifndef).
func isOpenDirective(token string) bool {
	return strings.HasPrefix(token, "`if")
}
