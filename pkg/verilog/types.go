package verilog

import "log/slog"

// EntryKind tags the variant held by an Entry.
type EntryKind int

const (
	// KindBinding is a port name or a parameter name=value pair.
	KindBinding EntryKind = iota
	// KindDirective is a preserved `ifdef, `ifndef or `endif token.
	KindDirective
	// KindError marks the position where a list scan stopped.
	KindError
)

func (k EntryKind) String() string {
	switch k {
	case KindBinding:
		return "binding"
	case KindDirective:
		return "directive"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is one line of a port or parameter list.
type Entry struct {
	Kind EntryKind `json:"kind"`
	// Name and Value are set for bindings. Port bindings have no value.
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
	// Token is the directive text for KindDirective.
	Token string `json:"token,omitempty"`
	// Separated reports whether the rendered binding is followed by a comma.
	// Only the last binding of a list has it cleared.
	Separated bool `json:"separated,omitempty"`
}

// Binding returns a binding entry with its separator in place.
func Binding(name, value string) Entry {
	return Entry{Kind: KindBinding, Name: name, Value: value, Separated: true}
}

// Directive returns a directive entry carrying token verbatim.
func Directive(token string) Entry {
	return Entry{Kind: KindDirective, Token: token}
}

// ErrorMarker returns the sentinel entry for an unparseable position.
func ErrorMarker() Entry {
	return Entry{Kind: KindError}
}

// IsBinding reports whether e is a binding.
func (e Entry) IsBinding() bool { return e.Kind == KindBinding }

// LogValue implements slog.LogValuer.
func (e Entry) LogValue() slog.Value {
	switch e.Kind {
	case KindBinding:
		if e.Value != "" {
			return slog.GroupValue(slog.String("kind", e.Kind.String()),
				slog.String("name", e.Name), slog.String("value", e.Value))
		}
		return slog.GroupValue(slog.String("kind", e.Kind.String()), slog.String("name", e.Name))
	case KindDirective:
		return slog.GroupValue(slog.String("kind", e.Kind.String()), slog.String("token", e.Token))
	default:
		return slog.GroupValue(slog.String("kind", e.Kind.String()))
	}
}

// Module is the interface of one Verilog module. Entry order follows the
// declaration order in the source.
type Module struct {
	Name       string  `json:"name"`
	Parameters []Entry `json:"parameters,omitempty"`
	Ports      []Entry `json:"ports,omitempty"`
}

// stripLastSeparator clears the separator of the last binding in entries,
// whatever non-binding entries follow it.
func stripLastSeparator(entries []Entry) []Entry {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].IsBinding() {
			entries[i].Separated = false
			break
		}
	}
	return entries
}
