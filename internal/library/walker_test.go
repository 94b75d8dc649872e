package library

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModule struct {
	path   string
	subs   []*fakeModule
	objs   []Object
	objErr error
	subErr error
}

func (m *fakeModule) Path() string    { return m.path }
func (m *fakeModule) Underlying() any { return m }

func (m *fakeModule) Submodules() ([]Module, error) {
	if m.subErr != nil {
		return nil, m.subErr
	}
	subs := make([]Module, len(m.subs))
	for i, s := range m.subs {
		subs[i] = s
	}
	return subs, nil
}

func (m *fakeModule) Objects() ([]Object, error) {
	if m.objErr != nil {
		return nil, m.objErr
	}
	return m.objs, nil
}

type fakeFunc struct {
	name string
	kind Kind
}

func (f *fakeFunc) Name() string    { return f.name }
func (f *fakeFunc) Kind() Kind      { return f.kind }
func (f *fakeFunc) Doc() string     { return "" }
func (f *fakeFunc) Underlying() any { return f }

func (f *fakeFunc) Signature() (Signature, error) {
	return Signature{}, nil
}

type fakeClass struct {
	name      string
	methods   []Function
	methodErr error
}

func (c *fakeClass) Name() string    { return c.name }
func (c *fakeClass) Kind() Kind      { return KindClass }
func (c *fakeClass) Doc() string     { return "" }
func (c *fakeClass) Underlying() any { return c }
func (c *fakeClass) Bases() []string { return nil }

func (c *fakeClass) Methods() ([]Function, error) {
	if c.methodErr != nil {
		return nil, c.methodErr
	}
	return c.methods, nil
}

func TestWalkCollectsFunctionsAndMethods(t *testing.T) {
	cls := &fakeClass{name: "Client", methods: []Function{&fakeFunc{name: "get_note", kind: KindMethod}}}
	root := &fakeModule{
		path: "pkg",
		objs: []Object{&fakeFunc{name: "helper", kind: KindFunction}, cls},
		subs: []*fakeModule{
			{path: "pkg.sub", objs: []Object{&fakeFunc{name: "other", kind: KindFunction}}},
		},
	}

	res := Walk(root)

	require.Empty(t, res.Skips)
	assert.Equal(t, []string{"pkg", "pkg.sub"}, res.Modules)

	paths := make([]string, len(res.Raws))
	for i, r := range res.Raws {
		paths[i] = r.Path
	}
	assert.Contains(t, paths, "pkg.helper")
	assert.Contains(t, paths, "pkg.Client")
	assert.Contains(t, paths, "pkg.Client.get_note")
	assert.Contains(t, paths, "pkg.sub.other")

	// Method raws carry their owner's identity.
	for _, r := range res.Raws {
		if r.Path == "pkg.Client.get_note" {
			assert.Equal(t, "pkg.Client", r.Class)
			assert.Same(t, cls, r.ClassID)
		}
	}
}

func TestWalkBreaksCycles(t *testing.T) {
	root := &fakeModule{path: "pkg"}
	sub := &fakeModule{path: "pkg.sub"}
	root.subs = []*fakeModule{sub}
	sub.subs = []*fakeModule{root, sub} // cycle back plus self-loop

	res := Walk(root)

	assert.Equal(t, []string{"pkg", "pkg.sub"}, res.Modules)
	assert.Empty(t, res.Skips)
}

func TestWalkStaysInsideRootNamespace(t *testing.T) {
	root := &fakeModule{
		path: "pkg",
		subs: []*fakeModule{
			{path: "pkg.sub"},
			{path: "numpy.core"},
		},
	}

	res := Walk(root)

	assert.Equal(t, []string{"pkg", "pkg.sub"}, res.Modules)
	require.Len(t, res.Skips, 1)
	assert.Equal(t, "numpy.core", res.Skips[0].Path)
	assert.Equal(t, "outside root namespace", res.Skips[0].Reason)
}

func TestWalkRecordsSkipsInsteadOfFailing(t *testing.T) {
	broken := &fakeClass{name: "Broken", methodErr: errors.New("boom")}
	root := &fakeModule{
		path: "pkg",
		objs: []Object{broken},
		subs: []*fakeModule{
			{path: "pkg.bad", objErr: errors.New("import error")},
		},
	}

	res := Walk(root)

	// The broken class keeps its own raw; only its methods are skipped.
	require.Len(t, res.Raws, 1)
	assert.Equal(t, "pkg.Broken", res.Raws[0].Path)

	reasons := make(map[string]string)
	for _, s := range res.Skips {
		reasons[s.Path] = s.Reason
	}
	assert.Contains(t, reasons["pkg.Broken"], "list methods")
	assert.Contains(t, reasons["pkg.bad"], "list objects")
}

func TestWalkVisitsReexportedModuleOnce(t *testing.T) {
	shared := &fakeModule{path: "pkg.shared", objs: []Object{&fakeFunc{name: "f", kind: KindFunction}}}
	root := &fakeModule{
		path: "pkg",
		subs: []*fakeModule{
			{path: "pkg.a", subs: []*fakeModule{shared}},
			{path: "pkg.b", subs: []*fakeModule{shared}},
		},
	}

	res := Walk(root)

	assert.Equal(t, []string{"pkg", "pkg.a", "pkg.b", "pkg.shared"}, res.Modules)

	count := 0
	for _, r := range res.Raws {
		if r.Path == "pkg.shared.f" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
