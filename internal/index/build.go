package index

import (
	"apilens/internal/library"
	"apilens/internal/record"
)

// Stats reports what one build pass produced.
type Stats struct {
	Modules   int
	Functions int
	Classes   int
	Skips     int
	Rejects   int
}

// FromLibrary runs the full build pass (reflect, normalize, index)
// against a library root and returns the resulting generation. The walk
// and the records it feeds are built fresh each call; nothing is shared
// with previous generations.
func FromLibrary(root library.Module) (*Index, error) {
	res := library.Walk(root)
	fns, classes, rejects := record.Normalize(res.Raws)
	return Build(fns, classes, res.Modules, res.Skips, rejects)
}

// Stats summarizes the generation for status output.
func (idx *Index) Stats() Stats {
	return Stats{
		Modules:   len(idx.modules),
		Functions: len(idx.functions),
		Classes:   len(idx.classes),
		Skips:     len(idx.skips),
		Rejects:   len(idx.rejects),
	}
}
