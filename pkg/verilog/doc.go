// Package verilog extracts module interfaces from Verilog/SystemVerilog source
// text and renders them as instantiation templates.
//
// # Overview
//
// Extraction is a forward pipeline over the whole input:
//  1. Strip block and line comments (no string awareness)
//  2. Locate every module ... endmodule span
//  3. Split each span into name, port list, and body
//  4. Scan the port list into an ordered list of entries
//  5. Collect parameter groups from the body, carrying `ifdef/`ifndef/`endif
//     directives that guard them
//  6. Render every module as a ready-to-paste instantiation
//
// The extractor is best effort. A module whose header is not recognized is
// dropped. A port or parameter list that hits text no rule matches gets an
// ErrorMarker entry at that position and the rest of that list is discarded.
// Other lists and other modules are unaffected.
//
// # Usage
//
//	ex := verilog.NewExtractor(verilog.WithLogger(logger))
//	modules := ex.ExtractString(src)
//	fmt.Print(verilog.NewRenderer(verilog.DefaultRenderOptions()).Render(modules))
//
// For input
//
//	module fifo #(parameter DEPTH=16) (input wire clk, output wire [7:0] q);
//	endmodule
//
// the template is
//
//	fifo #(
//		.DEPTH(16)
//		) FIFO (
//		.clk(),
//		.q()
//		);
//
// # Limitations
//
//   - Port and parameter lists may not contain nested parentheses
//   - No string literal or escaped identifier support
//   - Conditional directives are passed through, never checked for balance
package verilog
