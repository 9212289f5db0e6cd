package verilog

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, def *lexer.StatefulDefinition, text string) ([]lexer.Token, error) {
	t.Helper()
	lex, err := def.LexString("", text)
	require.NoError(t, err)
	var toks []lexer.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return toks, err
		}
		if tok.EOF() {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func TestPortLexerPriority(t *testing.T) {
	syms := PortLexer.Symbols()
	toks, err := lexAll(t, PortLexer, "input wire [7:0] a,\n`ifdef X\nb)")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, syms["Signal"], toks[0].Type)
	assert.Equal(t, "input wire [7:0] a,\n", toks[0].Value)
	assert.Equal(t, syms["Directive"], toks[1].Type)
	assert.Equal(t, syms["Signal"], toks[2].Type)
}

func TestPortLexerStopsOnUnknownText(t *testing.T) {
	toks, err := lexAll(t, PortLexer, "a, +b)")
	assert.Error(t, err)
	assert.Len(t, toks, 1)
}

func TestFieldLexer(t *testing.T) {
	syms := FieldLexer.Symbols()
	toks, err := lexAll(t, FieldLexer, "W = 8,\n`endif\nD=4;")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, syms["Field"], toks[0].Type)
	assert.Equal(t, syms["Directive"], toks[1].Type)
	assert.Equal(t, "D=4;", toks[2].Value)
}
