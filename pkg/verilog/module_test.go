package verilog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateModules(t *testing.T) {
	src := "module a(); endmodule\nwire x;\nmodule b(input c);\n  assign y = 1;\nendmodule"
	spans := LocateModules(src)
	require.Len(t, spans, 2)
	assert.Equal(t, "module a(); endmodule", spans[0])
	assert.Equal(t, "module b(input c);\n  assign y = 1;\nendmodule", spans[1])
}

func TestLocateModulesNeedsWordBoundary(t *testing.T) {
	assert.Empty(t, LocateModules("submodule x(); endmodule"))
	assert.Empty(t, LocateModules("module x();"))
}

func TestParseHeader(t *testing.T) {
	hdr, ok := ParseHeader("module top (input clk, output q);\n  reg r;\nendmodule")
	require.True(t, ok)
	assert.Equal(t, "top", hdr.Name)
	assert.Equal(t, "input clk, output q)", hdr.Ports)
	assert.Equal(t, "reg r;\nendmodule", hdr.Body)
	assert.Empty(t, hdr.Params)
}

func TestParseHeaderParameterList(t *testing.T) {
	hdr, ok := ParseHeader("module fifo #(parameter W=8, parameter D = 4) (input clk); endmodule")
	require.True(t, ok)
	assert.Equal(t, "fifo", hdr.Name)
	assert.Equal(t, "W=8, D = 4", hdr.Params)
	assert.Equal(t, "input clk)", hdr.Ports)
}

func TestParseHeaderRejects(t *testing.T) {
	for _, span := range []string{
		"module m(input [(W-1):0] a); endmodule",
		"module m; endmodule",
		"module (input a); endmodule",
	} {
		_, ok := ParseHeader(span)
		assert.False(t, ok, span)
	}
}

func TestMatchDirective(t *testing.T) {
	tok, end, ok := MatchDirective("  `ifdef FOO  x", 2)
	require.True(t, ok)
	assert.Equal(t, "`ifdef FOO", tok)
	assert.Equal(t, 14, end)

	tok, end, ok = MatchDirective("`endif\n", 0)
	require.True(t, ok)
	assert.Equal(t, "`endif", tok)
	assert.Equal(t, 7, end)

	tok, _, ok = MatchDirective("`ifndef BAR", 0)
	require.True(t, ok)
	assert.Equal(t, "`ifndef BAR", tok)

	_, end, ok = MatchDirective("`define X 1", 0)
	assert.False(t, ok)
	assert.Equal(t, 0, end)

	_, _, ok = MatchDirective("x `endif", 0)
	assert.False(t, ok)

	_, _, ok = MatchDirective("abc", 10)
	assert.False(t, ok)
}
