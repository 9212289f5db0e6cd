package verilog

import "strings"

// ParsePorts scans a port list (the text after the opening parenthesis, up
// to and including the closing one). An empty list yields no entries. The
// last binding has its separator stripped.
func ParsePorts(text string) []Entry {
	text = strings.TrimSpace(text)
	if strings.TrimSpace(strings.TrimSuffix(text, ")")) == "" {
		return nil
	}
	return stripLastSeparator(portGrammar.scan(text))
}
