package verilog

import (
	"strings"
)

// RenderOptions controls the template layout.
type RenderOptions struct {
	Indent        string
	ErrorMarker   string
	UpperInstance bool // instance name is the upper-cased module name
}

// DefaultRenderOptions returns tab indentation, the !ERROR! marker and an
// upper-cased instance name.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Indent:        "\t",
		ErrorMarker:   "!ERROR!",
		UpperInstance: true,
	}
}

// Renderer turns modules into instantiation templates.
type Renderer struct {
	opts RenderOptions
}

// NewRenderer creates a renderer.
func NewRenderer(opts RenderOptions) *Renderer {
	return &Renderer{opts: opts}
}

// Render concatenates the templates of modules in order. Every block is
// followed by one empty line. No modules give an empty string.
func (r *Renderer) Render(modules []*Module) string {
	var b strings.Builder
	for _, m := range modules {
		r.writeModule(&b, m)
	}
	return b.String()
}

// RenderModule returns the template of a single module.
func (r *Renderer) RenderModule(m *Module) string {
	var b strings.Builder
	r.writeModule(&b, m)
	return b.String()
}

func (r *Renderer) instance(name string) string {
	if r.opts.UpperInstance {
		return strings.ToUpper(name)
	}
	return name
}

func (r *Renderer) writeModule(b *strings.Builder, m *Module) {
	inst := r.instance(m.Name)
	switch {
	case len(m.Parameters) > 0:
		line(b, m.Name, " #(")
		for _, e := range m.Parameters {
			line(b, r.opts.Indent, r.entry(e, true))
		}
		line(b, r.opts.Indent, ") ", inst, " (")
	case len(m.Ports) > 0:
		line(b, m.Name, " ", inst, " (")
	default:
		line(b, m.Name, " ", inst, " ()")
	}
	if len(m.Ports) > 0 {
		for _, e := range m.Ports {
			line(b, r.opts.Indent, r.entry(e, false))
		}
		line(b, r.opts.Indent, ");")
	}
	line(b)
}

func (r *Renderer) entry(e Entry, withValue bool) string {
	switch e.Kind {
	case KindBinding:
		s := "." + e.Name + "("
		if withValue {
			s += e.Value
		}
		s += ")"
		if e.Separated {
			s += ","
		}
		return s
	case KindDirective:
		return e.Token
	default:
		return r.opts.ErrorMarker
	}
}

func line(b *strings.Builder, parts ...string) {
	for _, p := range parts {
		b.WriteString(p)
	}
	b.WriteByte('\n')
}
