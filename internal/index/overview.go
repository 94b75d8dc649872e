package index

// ModuleSummary counts the records directly owned by one module.
type ModuleSummary struct {
	Path      string `json:"path"`
	Functions int    `json:"functions"`
	Classes   int    `json:"classes"`
}

// Overview summarizes one index generation: totals, per-module counts,
// and the module paths the reflection pass visited. It is computed once
// at build time and lives and dies with its generation.
type Overview struct {
	TotalFunctions int             `json:"total_functions"`
	TotalClasses   int             `json:"total_classes"`
	Modules        []ModuleSummary `json:"modules"`
}

// ModulePaths returns the visited module paths in sorted order.
func (o Overview) ModulePaths() []string {
	paths := make([]string, len(o.Modules))
	for i, m := range o.Modules {
		paths[i] = m.Path
	}
	return paths
}

// aggregate projects the summary from a fully built index. Modules the
// walk visited appear even when they own no records.
func aggregate(idx *Index) Overview {
	counts := make(map[string]*ModuleSummary, len(idx.modules))
	for _, path := range idx.modules {
		counts[path] = &ModuleSummary{Path: path}
	}
	for _, f := range idx.functions {
		if s, ok := counts[f.Module]; ok {
			s.Functions++
		}
	}
	for _, c := range idx.classes {
		if s, ok := counts[c.Module]; ok {
			s.Classes++
		}
	}

	o := Overview{
		TotalFunctions: len(idx.functions),
		TotalClasses:   len(idx.classes),
		Modules:        make([]ModuleSummary, 0, len(counts)),
	}
	for _, path := range idx.modules {
		o.Modules = append(o.Modules, *counts[path])
	}
	return o
}
