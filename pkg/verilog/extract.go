package verilog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ErrNoModules is returned by the reader and file helpers when the input
// holds no recognizable module.
var ErrNoModules = errors.New("verilog: no modules found")

// Extractor runs the extraction pipeline. It holds no state between calls
// and is safe for concurrent use.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger that receives the diagnostic trace at debug
// level: one record per module, port entry and parameter entry.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates an extractor. Without WithLogger the trace is discarded.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractString returns the modules declared in src in source order.
func (e *Extractor) ExtractString(src string) []*Module {
	var modules []*Module
	for _, span := range LocateModules(StripComments(src)) {
		hdr, ok := ParseHeader(span)
		if !ok {
			e.logger.Debug("skipping module with unrecognized header", "len", len(span))
			continue
		}
		modules = append(modules, e.extractModule(hdr))
	}
	return modules
}

func (e *Extractor) extractModule(hdr Header) *Module {
	mod := &Module{Name: hdr.Name}
	e.logger.Debug("module", "name", mod.Name)

	mod.Ports = ParsePorts(hdr.Ports)
	for _, entry := range mod.Ports {
		e.logger.Debug("signal", "entry", entry)
	}

	var params []Entry
	if hdr.Params != "" {
		params = headerParameterFields(hdr.Params)
	}
	params = append(params, parameterBlocks(hdr.Body)...)
	mod.Parameters = stripLastSeparator(params)
	for _, entry := range mod.Parameters {
		e.logger.Debug("parameter", "entry", entry)
	}
	return mod
}

// Extract reads all of r and extracts its modules.
func (e *Extractor) Extract(r io.Reader) ([]*Module, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	modules := e.ExtractString(string(data))
	if len(modules) == 0 {
		return nil, ErrNoModules
	}
	return modules, nil
}

// ExtractFile extracts the modules of the file at path.
func (e *Extractor) ExtractFile(path string) ([]*Module, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return e.Extract(file)
}

// Template extracts src and renders it with the default options.
// Input without modules gives an empty string.
func Template(src string) string {
	return NewRenderer(DefaultRenderOptions()).Render(NewExtractor().ExtractString(src))
}
