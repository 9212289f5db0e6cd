package verilog

import (
	"regexp"
	"strings"
)

var (
	// Shortest span from a module keyword to the next endmodule.
	moduleRegexp = regexp.MustCompile(`(?s)\bmodule\s+.*?\s+endmodule\b`)

	// module <name> [#( <params> )] ( <ports> ) ; <body>
	// Neither list may contain parentheses.
	headerRegexp = regexp.MustCompile(`(?s)^module\s+(\w+)\s*(?:#\s*\(([^()]*)\)\s*)?\(([^()]*\))\s*;(.*)`)

	paramKeywordRegexp = regexp.MustCompile(`\bparameter\b\s*`)
)

// Header is a module span split into its parts.
type Header struct {
	Name string
	// Params is the text of an ANSI #( ... ) parameter list, parameter
	// keywords removed. Empty when the header has none.
	Params string
	// Ports is the port list text, including the closing parenthesis.
	Ports string
	Body  string
}

// LocateModules returns every module ... endmodule span of src in order.
// An endmodule inside the span is not special-cased, so the first one
// ends the module.
func LocateModules(src string) []string {
	return moduleRegexp.FindAllString(src, -1)
}

// ParseHeader splits a module span. It returns false when the span does
// not start with a recognized module header.
func ParseHeader(span string) (Header, bool) {
	m := headerRegexp.FindStringSubmatch(span)
	if m == nil {
		return Header{}, false
	}
	return Header{
		Name:   m[1],
		Params: strings.TrimSpace(paramKeywordRegexp.ReplaceAllString(m[2], "")),
		Ports:  strings.TrimSpace(m[3]),
		Body:   strings.TrimSpace(m[4]),
	}, true
}
