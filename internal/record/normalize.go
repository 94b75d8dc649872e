package record

import (
	"sort"
	"strings"

	"apilens/internal/library"
)

// Rejection reasons reported by Normalize.
const (
	ReasonPrivate       = "private name"
	ReasonUnsupported   = "unsupported object kind"
	ReasonBadSignature  = "signature unrenderable"
	ReasonOwnerRejected = "owner class rejected"
)

// Reject records one raw descriptor that did not become a record.
type Reject struct {
	Path   string
	Reason string
}

// Normalize converts raw descriptors into canonical records. Descriptors
// sharing an underlying identity collapse to one record under the
// canonical path (shortest dotted path, then lexicographic); duplicated
// classes keep the union of their discovered methods. Private names and
// unsupported kinds are rejected, not fatal. Output slices are sorted by
// path and contain no duplicate identities.
func Normalize(raws []library.Raw) (fns []FunctionRecord, classes []ClassRecord, rejects []Reject) {
	classByID := make(map[any]*ClassRecord)    // class identity → canonical record
	callables := make(map[any]*FunctionRecord) // callable identity → canonical record

	// First pass: classes, so methods can re-point at canonical owners.
	for _, raw := range raws {
		if raw.Object.Kind() != library.KindClass {
			continue
		}
		if strings.HasPrefix(raw.Object.Name(), "_") {
			rejects = append(rejects, Reject{Path: raw.Path, Reason: ReasonPrivate})
			continue
		}
		cls, ok := raw.Object.(library.Class)
		if !ok {
			rejects = append(rejects, Reject{Path: raw.Path, Reason: ReasonUnsupported})
			continue
		}
		id := raw.Object.Underlying()
		existing, seen := classByID[id]
		if seen && !canonicalBefore(raw.Path, existing.Path) {
			continue
		}
		rec := &ClassRecord{
			Path:   raw.Path,
			Name:   raw.Object.Name(),
			Module: raw.Module,
			Doc:    strings.TrimSpace(raw.Object.Doc()),
			Bases:  cls.Bases(),
		}
		classByID[id] = rec
	}

	// Second pass: callables, re-pointed at canonical class paths.
	for _, raw := range raws {
		kind := raw.Object.Kind()
		switch kind {
		case library.KindClass:
			continue
		case library.KindFunction, library.KindMethod, library.KindClassMethod, library.KindStaticMethod:
		default:
			rejects = append(rejects, Reject{Path: raw.Path, Reason: ReasonUnsupported})
			continue
		}
		if strings.HasPrefix(raw.Object.Name(), "_") {
			rejects = append(rejects, Reject{Path: raw.Path, Reason: ReasonPrivate})
			continue
		}
		fn, ok := raw.Object.(library.Function)
		if !ok {
			rejects = append(rejects, Reject{Path: raw.Path, Reason: ReasonUnsupported})
			continue
		}

		path, module, owner := raw.Path, raw.Module, raw.Class
		if raw.ClassID != nil {
			ownerRec, found := classByID[raw.ClassID]
			if !found {
				rejects = append(rejects, Reject{Path: raw.Path, Reason: ReasonOwnerRejected})
				continue
			}
			owner = ownerRec.Path
			module = ownerRec.Module
			path = owner + "." + raw.Object.Name()
		}

		id := raw.Object.Underlying()
		existing, seen := callables[id]
		if seen && !canonicalBefore(path, existing.Path) {
			continue
		}

		sig, err := fn.Signature()
		if err != nil {
			rejects = append(rejects, Reject{Path: path, Reason: ReasonBadSignature})
			continue
		}
		callables[id] = &FunctionRecord{
			Path:      path,
			Name:      raw.Object.Name(),
			Module:    module,
			Class:     owner,
			Kind:      kind.String(),
			Signature: RenderSignature(raw.Object.Name(), sig),
			Params:    sig.Params,
			Return:    sig.Return,
			Doc:       strings.TrimSpace(raw.Object.Doc()),
		}
	}

	for _, rec := range callables {
		fns = append(fns, *rec)
	}
	sort.Slice(fns, func(i, j int) bool { return fns[i].Path < fns[j].Path })

	// Attach surviving methods to their owners, ordered by path.
	methodsOf := make(map[string][]string)
	for _, f := range fns {
		if f.Class != "" {
			methodsOf[f.Class] = append(methodsOf[f.Class], f.Path)
		}
	}
	for _, rec := range classByID {
		rec.Methods = methodsOf[rec.Path]
		classes = append(classes, *rec)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Path < classes[j].Path })

	return fns, classes, rejects
}

// canonicalBefore reports whether path a wins over b under the canonical
// path rule: shortest dotted path first, ties broken lexicographically.
func canonicalBefore(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
