package verilog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"line comment", "wire a; // note\nwire b;", "wire a; \nwire b;"},
		{"block comment across lines", "a /* x\n y */ b", "a  b"},
		{"block is non-greedy", "a /* 1 */ b /* 2 */ c", "a  b  c"},
		{"line marker inside block", "a /* // */ b", "a  b"},
		{"marker inside string still strips", `$display("http://x");`, `$display("http:`},
		{"clean text untouched", "module m(); endmodule", "module m(); endmodule"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComments(tt.in))
		})
	}
}

func TestStripCommentsIdempotent(t *testing.T) {
	src := "module m(input a); // x\n/* y */ endmodule"
	once := StripComments(src)
	assert.Equal(t, once, StripComments(once))
}
