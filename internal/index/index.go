package index

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"apilens/internal/library"
	"apilens/internal/record"
)

// ErrNoModules signals that reflection could not run at all: the walk
// reached zero modules. A reachable library with zero public members is
// not an error and builds an empty, queryable index.
var ErrNoModules = errors.New("no importable modules found")

// Index is one immutable generation of lookup structures over the
// normalized records. It is fully built by Build or not at all, and is
// never mutated afterwards; refreshes replace the whole value.
type Index struct {
	functions   []record.FunctionRecord // sorted by path
	classes     []record.ClassRecord    // sorted by path
	byPath      map[string]entry
	byName      map[string][]int // lowercase short name → offsets into functions
	searchables []searchText     // one per record, sorted by path
	modules     []string
	skips       []library.Skip
	rejects     []record.Reject
	overview    Overview
}

// searchText is the lowercase projection of one record used for
// substring matching.
type searchText struct {
	path string
	name string
	doc  string
}

type entry struct {
	class bool
	off   int
}

// Build is the single construction entry point. It fails when the walk
// visited no modules or when two records share an identity; it never
// returns a partially built index.
func Build(fns []record.FunctionRecord, classes []record.ClassRecord, modules []string, skips []library.Skip, rejects []record.Reject) (*Index, error) {
	if len(modules) == 0 {
		return nil, ErrNoModules
	}

	idx := &Index{
		functions: fns,
		classes:   classes,
		byPath:    make(map[string]entry, len(fns)+len(classes)),
		byName:    make(map[string][]int),
		modules:   append([]string(nil), modules...),
		skips:     skips,
		rejects:   rejects,
	}
	sort.Strings(idx.modules)

	for i, f := range fns {
		if _, dup := idx.byPath[f.Path]; dup {
			return nil, fmt.Errorf("duplicate record identity %q", f.Path)
		}
		idx.byPath[f.Path] = entry{off: i}
		idx.byName[strings.ToLower(f.Name)] = append(idx.byName[strings.ToLower(f.Name)], i)
		idx.searchables = append(idx.searchables, searchText{
			path: f.Path,
			name: strings.ToLower(f.Name),
			doc:  strings.ToLower(f.Doc),
		})
	}
	for i, c := range classes {
		if _, dup := idx.byPath[c.Path]; dup {
			return nil, fmt.Errorf("duplicate record identity %q", c.Path)
		}
		idx.byPath[c.Path] = entry{class: true, off: i}
		idx.searchables = append(idx.searchables, searchText{
			path: c.Path,
			name: strings.ToLower(c.Name),
			doc:  strings.ToLower(c.Doc),
		})
	}
	sort.Slice(idx.searchables, func(i, j int) bool { return idx.searchables[i].path < idx.searchables[j].path })

	idx.overview = aggregate(idx)
	return idx, nil
}

// Tokenize lowercases a query and splits it on non-alphanumeric
// boundaries. Each resulting token is matched against records by
// substring containment.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Functions returns all function records ordered by dotted path.
func (idx *Index) Functions() []record.FunctionRecord { return idx.functions }

// Classes returns all class records ordered by dotted path.
func (idx *Index) Classes() []record.ClassRecord { return idx.classes }

// Modules returns the visited module paths, sorted.
func (idx *Index) Modules() []string { return idx.modules }

// Skips returns the reflection skip report accumulated during the build.
func (idx *Index) Skips() []library.Skip { return idx.skips }

// Rejects returns the normalizer rejections accumulated during the build.
func (idx *Index) Rejects() []record.Reject { return idx.rejects }

// Overview returns the summary computed once at build time.
func (idx *Index) Overview() Overview { return idx.overview }

// Lookup resolves an exact dotted path to its record. Exactly one of
// the returned pointers is non-nil when ok is true.
func (idx *Index) Lookup(path string) (fn *record.FunctionRecord, cls *record.ClassRecord, ok bool) {
	e, ok := idx.byPath[path]
	if !ok {
		return nil, nil, false
	}
	if e.class {
		return nil, &idx.classes[e.off], true
	}
	return &idx.functions[e.off], nil, true
}

// FunctionsNamed returns every function record whose short name matches
// (case-insensitive), ordered by dotted path.
func (idx *Index) FunctionsNamed(name string) []record.FunctionRecord {
	offs := idx.byName[strings.ToLower(name)]
	out := make([]record.FunctionRecord, 0, len(offs))
	for _, off := range offs {
		out = append(out, idx.functions[off])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// FunctionsInModule returns function records whose module equals the
// prefix or is a sub-path of it, ordered by dotted path. An unmatched
// prefix yields an empty slice.
func (idx *Index) FunctionsInModule(prefix string) []record.FunctionRecord {
	lo, hi := pathRange(len(idx.functions), prefix, func(i int) string { return idx.functions[i].Path })
	return idx.functions[lo:hi]
}

// ClassesInModule is FunctionsInModule for class records.
func (idx *Index) ClassesInModule(prefix string) []record.ClassRecord {
	lo, hi := pathRange(len(idx.classes), prefix, func(i int) string { return idx.classes[i].Path })
	return idx.classes[lo:hi]
}

// pathRange binary-searches a path-sorted sequence for the half-open
// range of paths under the dotted prefix.
func pathRange(n int, prefix string, path func(int) string) (int, int) {
	want := prefix + "."
	lo := sort.Search(n, func(i int) bool { return path(i) >= want })
	hi := sort.Search(n, func(i int) bool { return !strings.HasPrefix(path(i), want) && path(i) >= want })
	return lo, hi
}

// MatchingPaths returns the paths of records whose lowercase name or
// docstring contains the token as a plain substring, ordered by path.
func (idx *Index) MatchingPaths(token string) []string {
	var out []string
	for _, s := range idx.searchables {
		if strings.Contains(s.name, token) || strings.Contains(s.doc, token) {
			out = append(out, s.path)
		}
	}
	return out
}
