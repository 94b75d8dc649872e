package library

import (
	"fmt"
	"sort"
	"strings"
)

// Raw is one discovered descriptor, tagged with the dotted path it was
// reached through. For methods, Class and ClassID identify the owning
// class so the normalizer can attach them after deduplication.
type Raw struct {
	Path    string
	Module  string
	Class   string // owning class dotted path, "" for top-level objects
	ClassID any    // identity of the owning class, nil for top-level
	Object  Object
}

// Skip records a module or object that raised during introspection and
// was left out of the walk instead of aborting it.
type Skip struct {
	Path   string
	Reason string
}

// Result holds everything one walk produced.
type Result struct {
	Raws    []Raw
	Skips   []Skip
	Modules []string // visited module paths, sorted
}

// Walk traverses the module tree breadth-first from root and collects a
// raw descriptor for every reachable function, class, and method.
// Traversal never leaves the root package namespace, cycles are broken
// by tracking visited module identities, and any submodule or object
// that errors on access becomes a Skip rather than a failure. The walk
// is read-only with respect to the library.
func Walk(root Module) Result {
	var res Result
	visited := make(map[any]bool)

	queue := []Module{root}
	for len(queue) > 0 {
		mod := queue[0]
		queue = queue[1:]

		if visited[mod.Underlying()] {
			continue
		}
		visited[mod.Underlying()] = true
		res.Modules = append(res.Modules, mod.Path())

		objs, err := mod.Objects()
		if err != nil {
			res.Skips = append(res.Skips, Skip{Path: mod.Path(), Reason: fmt.Sprintf("list objects: %v", err)})
		} else {
			for _, obj := range objs {
				res.collect(mod.Path(), obj)
			}
		}

		subs, err := mod.Submodules()
		if err != nil {
			res.Skips = append(res.Skips, Skip{Path: mod.Path(), Reason: fmt.Sprintf("list submodules: %v", err)})
			continue
		}
		for _, sub := range subs {
			// A re-imported ancestor is a broken cycle, not a skip.
			if visited[sub.Underlying()] {
				continue
			}
			// Confine the walk to the root package namespace.
			if !strings.HasPrefix(sub.Path(), root.Path()+".") {
				res.Skips = append(res.Skips, Skip{Path: sub.Path(), Reason: "outside root namespace"})
				continue
			}
			queue = append(queue, sub)
		}
	}

	sort.Strings(res.Modules)
	return res
}

// collect emits the raw for one top-level object and, for classes, one
// raw per owned method. A class whose method listing errors still keeps
// its own raw.
func (res *Result) collect(modPath string, obj Object) {
	path := modPath + "." + obj.Name()
	res.Raws = append(res.Raws, Raw{Path: path, Module: modPath, Object: obj})

	cls, ok := obj.(Class)
	if !ok {
		return
	}
	methods, err := cls.Methods()
	if err != nil {
		res.Skips = append(res.Skips, Skip{Path: path, Reason: fmt.Sprintf("list methods: %v", err)})
		return
	}
	for _, m := range methods {
		res.Raws = append(res.Raws, Raw{
			Path:    path + "." + m.Name(),
			Module:  modPath,
			Class:   path,
			ClassID: obj.Underlying(),
			Object:  m,
		})
	}
}
