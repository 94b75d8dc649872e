package record

import (
	"strings"

	"apilens/internal/library"
)

// placeholderDefault stands in for a default value whose literal source
// representation could not be captured. Defaults are never evaluated.
const placeholderDefault = "<unrepresentable>"

// FunctionRecord is the canonical unit of metadata for a callable.
// Path is the fully-qualified dotted identity and is unique across an
// index generation.
type FunctionRecord struct {
	Path      string          `json:"path"`
	Name      string          `json:"name"`
	Module    string          `json:"module"`
	Class     string          `json:"class,omitempty"` // owning class path, "" for plain functions
	Kind      string          `json:"kind"`            // function, method, classmethod, staticmethod
	Signature string          `json:"signature"`
	Params    []library.Param `json:"-"`
	Return    string          `json:"return_type,omitempty"`
	Doc       string          `json:"docstring"`
}

// ClassRecord is the canonical unit of metadata for a class. Methods
// reference FunctionRecord paths. Bases are informational only.
type ClassRecord struct {
	Path    string   `json:"path"`
	Name    string   `json:"name"`
	Module  string   `json:"module"`
	Doc     string   `json:"docstring"`
	Methods []string `json:"methods,omitempty"`
	Bases   []string `json:"bases,omitempty"`
}

// RenderSignature projects a signature to text without evaluating
// anything. An unrepresentable default renders as a fixed placeholder.
func RenderSignature(name string, sig library.Signature) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, p := range sig.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Star)
		b.WriteString(p.Name)
		if p.Type != "" {
			b.WriteString(": ")
			b.WriteString(p.Type)
		}
		if p.HasDefault {
			text := p.Default
			if text == "" {
				text = placeholderDefault
			}
			if p.Type != "" {
				b.WriteString(" = ")
			} else {
				b.WriteString("=")
			}
			b.WriteString(text)
		}
	}
	b.WriteByte(')')
	if sig.Return != "" {
		b.WriteString(" -> ")
		b.WriteString(sig.Return)
	}
	return b.String()
}
