package verilog

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Rule order is lookahead priority: a declaration is tried before a
// directive. Text neither rule matches is a lexing error, which ends the list.
const (
	// [direction [reg|wire|logic] [range]] name [= default] , or )
	signalPattern = `(?:(?:input|output|inout)\s+(?:reg|wire|logic)?\s*(?:\[[^:]+:[^:]+\])?)?\s*(\w+)\s*(?:=[^,)]*)?[,)]\s*`

	// name = value , or ;
	fieldPattern = `(\w+)\s*=\s*([^,;\n]*?)\s*[,;]\s*`
)

// PortLexer tokenizes a port list into Signal and Directive tokens.
var PortLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Signal", Pattern: signalPattern},
	{Name: "Directive", Pattern: directivePattern},
})

// FieldLexer tokenizes the fields of one parameter group into Field and
// Directive tokens.
var FieldLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Field", Pattern: fieldPattern},
	{Name: "Directive", Pattern: directivePattern},
})

var (
	signalRegexp = regexp.MustCompile(`^` + signalPattern)
	fieldRegexp  = regexp.MustCompile(`^` + fieldPattern)
)

// listGrammar binds a lexer definition to the conversion of its
// declaration tokens into bindings.
type listGrammar struct {
	def       *lexer.StatefulDefinition
	directive lexer.TokenType
	bind      func(value string) Entry
}

func newListGrammar(def *lexer.StatefulDefinition, bind func(value string) Entry) *listGrammar {
	return &listGrammar{
		def:       def,
		directive: def.Symbols()["Directive"],
		bind:      bind,
	}
}

var (
	portGrammar = newListGrammar(PortLexer, func(value string) Entry {
		m := signalRegexp.FindStringSubmatch(value)
		return Binding(m[1], "")
	})
	fieldGrammar = newListGrammar(FieldLexer, func(value string) Entry {
		m := fieldRegexp.FindStringSubmatch(value)
		return Binding(m[1], m[2])
	})
)

// scan lexes text and returns its entries in order. The first position no
// rule matches yields an ErrorMarker and the remaining text is discarded.
// Separators are left in place.
func (g *listGrammar) scan(text string) []Entry {
	var entries []Entry
	lex, err := g.def.LexString("", text)
	if err != nil {
		return append(entries, ErrorMarker())
	}
	for {
		tok, err := lex.Next()
		if err != nil {
			return append(entries, ErrorMarker())
		}
		if tok.EOF() {
			return entries
		}
		if tok.Type == g.directive {
			entries = append(entries, Directive(strings.TrimSpace(tok.Value)))
			continue
		}
		entries = append(entries, g.bind(tok.Value))
	}
}
