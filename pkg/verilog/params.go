package verilog

import (
	"regexp"
	"strings"
)

var (
	// parameter <fields> ; where fields hold no semicolon.
	paramGroupRegexp = regexp.MustCompile(`\bparameter\s+([^;]*;)`)

	trailingDirectivesRegexp = regexp.MustCompile("(?:\\s*" + directivePattern + ")+$")
)

// ParseParameterFields scans the fields of one parameter group, for example
// "WIDTH = 8, DEPTH = 16;". The last binding has its separator stripped.
func ParseParameterFields(text string) []Entry {
	return stripLastSeparator(parameterFields(text))
}

func parameterFields(text string) []Entry {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return fieldGrammar.scan(text)
}

// headerParameterFields scans the fields of an ANSI #( ... ) list, which has
// no terminator of its own. The terminator goes after the last field, ahead
// of any directives that close the list.
func headerParameterFields(text string) []Entry {
	text = strings.TrimSpace(text)
	tail := ""
	if loc := trailingDirectivesRegexp.FindStringIndex(text); loc != nil {
		text, tail = strings.TrimSpace(text[:loc[0]]), text[loc[0]:]
	}
	if text != "" && !strings.ContainsAny(text[len(text)-1:], ",;") {
		text += ";"
	}
	return append(parameterFields(text), parameterFields(tail)...)
}

// ParseParameterBlocks collects every parameter group of a module body in
// order, together with the conditional directives around them. The last
// binding of the whole list has its separator stripped.
func ParseParameterBlocks(body string) []Entry {
	return stripLastSeparator(parameterBlocks(body))
}

// pendingState is the state machine carrying directives across the gap
// between parameter groups. With no pending opens it is idle. Every open
// raises the depth, a close lowers it, and a group boundary flushes all
// pending opens as guards of the new group. Balance is never checked.
type pendingState struct {
	opens []string
}

func (s *pendingState) depth() int { return len(s.opens) }

// open records an opening directive.
func (s *pendingState) open(token string) {
	s.opens = append(s.opens, token)
}

// close consumes a closing directive. It returns false when nothing was
// pending, meaning the close belongs to a conditional opened before the
// scan window and must be emitted as is.
func (s *pendingState) close() bool {
	if s.depth() == 0 {
		return false
	}
	s.opens = s.opens[:len(s.opens)-1]
	return true
}

// boundary flushes the pending opens in push order and returns to idle.
func (s *pendingState) boundary() []Entry {
	if s.depth() == 0 {
		return nil
	}
	out := make([]Entry, 0, len(s.opens))
	for _, tok := range s.opens {
		out = append(out, Directive(tok))
	}
	s.opens = nil
	return out
}

func parameterBlocks(body string) []Entry {
	body = strings.TrimSpace(body)

	var (
		entries []Entry
		state   pendingState
		offset  int
	)
	for {
		group := paramGroupRegexp.FindStringSubmatchIndex(body[offset:])
		limit := len(body)
		if group != nil {
			limit = offset + group[0]
		}

		// Directives in the gap before the next group (or the end of body).
		for pos := offset; ; {
			tok, start, end, ok := findDirective(body, pos)
			if !ok || start > limit {
				break
			}
			pos = end
			switch {
			case isOpenDirective(tok):
				state.open(tok)
			case !state.close():
				entries = append(entries, Directive(tok))
			}
		}
		entries = append(entries, state.boundary()...)

		if group == nil {
			return entries
		}
		entries = append(entries, parameterFields(body[offset+group[2]:offset+group[3]])...)
		offset += group[1]
	}
}
