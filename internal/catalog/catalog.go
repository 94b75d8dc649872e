// Package catalog holds declarative descriptions of library surfaces
// and adapts them to the reflection capabilities. Metadata is defined
// statically so introspection never depends on the described library
// being installed or executed.
package catalog

import "apilens/internal/library"

// Func declares one callable: a plain function or, when owned by a
// Class, a method. A zero Kind means function (method when owned).
type Func struct {
	Name   string
	Doc    string
	Kind   library.Kind
	Params []library.Param
	Return string
}

// Class declares a class, its base names, and its methods.
type Class struct {
	Name    string
	Doc     string
	Bases   []string
	Methods []*Func
}

// Module is one node of a declarative module tree. Submodule paths are
// fully qualified.
type Module struct {
	Path    string
	Submods []*Module
	Funcs   []*Func
	Classes []*Class
}

// Adapt wraps a declarative module tree as a walkable library root.
// The same *Func or *Class reachable through two paths keeps one
// identity, so re-exports deduplicate.
func Adapt(m *Module) library.Module { return moduleAdapter{m} }

type moduleAdapter struct{ m *Module }

func (a moduleAdapter) Path() string    { return a.m.Path }
func (a moduleAdapter) Underlying() any { return a.m }

func (a moduleAdapter) Submodules() ([]library.Module, error) {
	subs := make([]library.Module, len(a.m.Submods))
	for i, s := range a.m.Submods {
		subs[i] = moduleAdapter{s}
	}
	return subs, nil
}

func (a moduleAdapter) Objects() ([]library.Object, error) {
	objs := make([]library.Object, 0, len(a.m.Funcs)+len(a.m.Classes))
	for _, f := range a.m.Funcs {
		objs = append(objs, funcAdapter{f: f})
	}
	for _, c := range a.m.Classes {
		objs = append(objs, classAdapter{c})
	}
	return objs, nil
}

type funcAdapter struct {
	f     *Func
	owned bool // owned by a class: a zero Kind reads as method
}

func (a funcAdapter) Name() string    { return a.f.Name }
func (a funcAdapter) Doc() string     { return a.f.Doc }
func (a funcAdapter) Underlying() any { return a.f }

func (a funcAdapter) Kind() library.Kind {
	if a.owned && a.f.Kind == library.KindFunction {
		return library.KindMethod
	}
	return a.f.Kind
}

func (a funcAdapter) Signature() (library.Signature, error) {
	return library.Signature{Params: a.f.Params, Return: a.f.Return}, nil
}

type classAdapter struct{ c *Class }

func (a classAdapter) Name() string       { return a.c.Name }
func (a classAdapter) Doc() string        { return a.c.Doc }
func (a classAdapter) Kind() library.Kind { return library.KindClass }
func (a classAdapter) Underlying() any    { return a.c }
func (a classAdapter) Bases() []string    { return a.c.Bases }

func (a classAdapter) Methods() ([]library.Function, error) {
	methods := make([]library.Function, len(a.c.Methods))
	for i, m := range a.c.Methods {
		methods[i] = funcAdapter{f: m, owned: true}
	}
	return methods, nil
}
