package verilog

import "regexp"

// commentRegexp matches /* ... */ spans (across lines) and // line tails.
var commentRegexp = regexp.MustCompile(`(?s:/\*.*?\*/)|//[^\n]*`)

// StripComments removes block and line comments from src. Quotes are not
// understood, so a comment marker inside a string literal still starts a
// comment.
func StripComments(src string) string {
	return commentRegexp.ReplaceAllString(src, "")
}
