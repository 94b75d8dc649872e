package query

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"apilens/internal/index"
	"apilens/internal/record"
)

// Engine answers the five query operations against the current index
// generation. Every operation captures one generation at entry and
// reads only from it, so queries stay consistent across a concurrent
// refresh.
type Engine struct {
	holder *index.Holder
}

// New wraps a generation holder.
func New(h *index.Holder) *Engine {
	return &Engine{holder: h}
}

// Tiers order search results: exact name matches first, then matches
// inside a name, then records matched only through their docstring.
type MatchTier int

const (
	TierExactName MatchTier = iota
	TierNameSubstring
	TierDocstring
)

// Match is one search result. Exactly one of Function and Class is set.
type Match struct {
	Tier     MatchTier              `json:"-"`
	Function *record.FunctionRecord `json:"function,omitempty"`
	Class    *record.ClassRecord    `json:"class,omitempty"`
}

// Path returns the matched record's dotted identity.
func (m Match) Path() string {
	if m.Function != nil {
		return m.Function.Path
	}
	return m.Class.Path
}

// ListFunctions returns all function records, restricted to a module
// path (equal or sub-path) when moduleFilter is non-empty. An unmatched
// filter yields an empty result, not an error.
func (e *Engine) ListFunctions(moduleFilter string) []record.FunctionRecord {
	idx := e.holder.Current()
	if moduleFilter == "" {
		return idx.Functions()
	}
	return idx.FunctionsInModule(moduleFilter)
}

// ListClasses returns all class records. With includeMethods false the
// method lists are omitted from the projection; the index itself is
// untouched.
func (e *Engine) ListClasses(includeMethods bool) []record.ClassRecord {
	classes := e.holder.Current().Classes()
	if includeMethods {
		return classes
	}
	out := make([]record.ClassRecord, len(classes))
	copy(out, classes)
	for i := range out {
		out[i].Methods = nil
	}
	return out
}

// Search splits the query into lowercase tokens, matches records whose
// name or docstring contains any token as a substring, and returns them
// in the fixed tier order with ties broken by dotted path. A blank
// query is invalid; a non-blank query that yields no tokens matches
// nothing.
func (e *Engine) Search(query string) ([]Match, error) {
	idx := e.holder.Current()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrInvalidQuery
	}
	tokens := index.Tokenize(query)
	if len(tokens) == 0 {
		return []Match{}, nil
	}

	candidates := make(map[string]bool)
	for _, tok := range tokens {
		for _, path := range idx.MatchingPaths(tok) {
			candidates[path] = true
		}
	}

	matches := make([]Match, 0, len(candidates))
	for path := range candidates {
		fn, cls, ok := idx.Lookup(path)
		if !ok {
			continue
		}
		m := Match{Function: fn, Class: cls}
		name := ""
		if fn != nil {
			name = fn.Name
		} else {
			name = cls.Name
		}
		m.Tier = tierFor(strings.ToLower(name), q, tokens)
		matches = append(matches, m)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Tier != matches[j].Tier {
			return matches[i].Tier < matches[j].Tier
		}
		return matches[i].Path() < matches[j].Path()
	})
	return matches, nil
}

func tierFor(name, query string, tokens []string) MatchTier {
	if name == query {
		return TierExactName
	}
	for _, tok := range tokens {
		if strings.Contains(name, tok) {
			return TierNameSubstring
		}
	}
	return TierDocstring
}

// Overview returns the summary of the current generation.
func (e *Engine) Overview() index.Overview {
	return e.holder.Current().Overview()
}

// Stats reports the current generation's build statistics.
func (e *Engine) Stats() index.Stats {
	return e.holder.Current().Stats()
}

// FunctionDetails looks a function up by exact short name. All records
// sharing the name are returned, disambiguated by their module paths; a
// miss returns NotFoundError with close-name suggestions.
func (e *Engine) FunctionDetails(name string) ([]record.FunctionRecord, error) {
	idx := e.holder.Current()
	matches := idx.FunctionsNamed(name)
	if len(matches) > 0 {
		return matches, nil
	}
	return nil, &NotFoundError{Name: name, Suggestions: suggest(idx, name)}
}

// Refresh rebuilds the index and publishes the new generation. In-flight
// queries keep the generation they captured.
func (e *Engine) Refresh(build func() (*index.Index, error)) error {
	return e.holder.Refresh(build)
}

// suggest finds short names close to the missed one. Jaro-Winkler favors
// shared prefixes, which suits dotted API names well.
func suggest(idx *index.Index, name string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range idx.Functions() {
		if !seen[f.Name] {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}

	found, err := edlib.FuzzySearchSetThreshold(strings.ToLower(name), names, 3, 0.7, edlib.JaroWinkler)
	if err != nil {
		return nil
	}
	var out []string
	for _, s := range found {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
