package index

import (
	"testing"

	"apilens/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fn(path, name, module string) record.FunctionRecord {
	return record.FunctionRecord{Path: path, Name: name, Module: module, Kind: "function"}
}

func TestBuildFailsWithoutModules(t *testing.T) {
	_, err := Build(nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoModules)
}

func TestBuildEmptyLibraryIsQueryable(t *testing.T) {
	idx, err := Build(nil, nil, []string{"pkg"}, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, idx.Functions())
	assert.Empty(t, idx.Classes())

	ov := idx.Overview()
	assert.Equal(t, 0, ov.TotalFunctions)
	require.Len(t, ov.Modules, 1)
	assert.Equal(t, "pkg", ov.Modules[0].Path)
}

func TestBuildRejectsDuplicatePaths(t *testing.T) {
	fns := []record.FunctionRecord{
		fn("pkg.f", "f", "pkg"),
		fn("pkg.f", "f", "pkg"),
	}
	_, err := Build(fns, nil, []string{"pkg"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate record identity")
}

func TestFunctionsNamedIsCaseInsensitive(t *testing.T) {
	fns := []record.FunctionRecord{
		fn("pkg.a.Get_Notes", "Get_Notes", "pkg.a"),
		fn("pkg.b.get_notes", "get_notes", "pkg.b"),
		fn("pkg.other", "other", "pkg"),
	}
	idx, err := Build(fns, nil, []string{"pkg", "pkg.a", "pkg.b"}, nil, nil)
	require.NoError(t, err)

	got := idx.FunctionsNamed("GET_NOTES")
	require.Len(t, got, 2)
	assert.Equal(t, "pkg.a.Get_Notes", got[0].Path)
	assert.Equal(t, "pkg.b.get_notes", got[1].Path)
}

func TestFunctionsInModuleMatchesSubpathsOnly(t *testing.T) {
	fns := []record.FunctionRecord{
		fn("pkg.api.Client.get", "get", "pkg.api"),
		fn("pkg.api.deep.f", "f", "pkg.api.deep"),
		fn("pkg.apiextra.g", "g", "pkg.apiextra"),
		fn("pkg.tools.h", "h", "pkg.tools"),
	}
	idx, err := Build(fns, nil, []string{"pkg", "pkg.api", "pkg.api.deep", "pkg.apiextra", "pkg.tools"}, nil, nil)
	require.NoError(t, err)

	got := idx.FunctionsInModule("pkg.api")
	require.Len(t, got, 2)
	assert.Equal(t, "pkg.api.Client.get", got[0].Path)
	assert.Equal(t, "pkg.api.deep.f", got[1].Path)

	assert.Empty(t, idx.FunctionsInModule("pkg.missing"))
}

func TestLookupDistinguishesKinds(t *testing.T) {
	fns := []record.FunctionRecord{fn("pkg.f", "f", "pkg")}
	classes := []record.ClassRecord{{Path: "pkg.C", Name: "C", Module: "pkg"}}
	idx, err := Build(fns, classes, []string{"pkg"}, nil, nil)
	require.NoError(t, err)

	f, c, ok := idx.Lookup("pkg.f")
	require.True(t, ok)
	assert.NotNil(t, f)
	assert.Nil(t, c)

	f, c, ok = idx.Lookup("pkg.C")
	require.True(t, ok)
	assert.Nil(t, f)
	assert.NotNil(t, c)

	_, _, ok = idx.Lookup("pkg.missing")
	assert.False(t, ok)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"get", "notes"}, Tokenize("get_notes"))
	assert.Equal(t, []string{"get", "all", "notes"}, Tokenize("Get ALL notes!"))
	assert.Equal(t, []string{"api2", "openreview", "net"}, Tokenize("api2.openreview.net"))
	assert.Empty(t, Tokenize("  ,;-  "))
}

func TestMatchingPathsUseSubstringContainment(t *testing.T) {
	fns := []record.FunctionRecord{
		{Path: "pkg.get_notes", Name: "get_notes", Module: "pkg", Kind: "function", Doc: "Fetches submissions"},
	}
	classes := []record.ClassRecord{
		{Path: "pkg.Profile", Name: "Profile", Module: "pkg", Doc: "Holds a note history"},
	}
	idx, err := Build(fns, classes, []string{"pkg"}, nil, nil)
	require.NoError(t, err)

	// "note" is inside the name get_notes and inside Profile's docstring.
	assert.Equal(t, []string{"pkg.Profile", "pkg.get_notes"}, idx.MatchingPaths("note"))
	assert.Equal(t, []string{"pkg.get_notes"}, idx.MatchingPaths("get"))
	assert.Equal(t, []string{"pkg.Profile", "pkg.get_notes"}, idx.MatchingPaths("o"))
	assert.Empty(t, idx.MatchingPaths("unknown"))
}

func TestOverviewCountsPerModule(t *testing.T) {
	fns := []record.FunctionRecord{
		fn("pkg.f", "f", "pkg"),
		fn("pkg.api.g", "g", "pkg.api"),
		fn("pkg.api.h", "h", "pkg.api"),
	}
	classes := []record.ClassRecord{
		{Path: "pkg.api.C", Name: "C", Module: "pkg.api"},
	}
	idx, err := Build(fns, classes, []string{"pkg", "pkg.api", "pkg.empty"}, nil, nil)
	require.NoError(t, err)

	ov := idx.Overview()
	assert.Equal(t, 3, ov.TotalFunctions)
	assert.Equal(t, 1, ov.TotalClasses)
	assert.Equal(t, []string{"pkg", "pkg.api", "pkg.empty"}, ov.ModulePaths())

	byPath := make(map[string]ModuleSummary)
	for _, m := range ov.Modules {
		byPath[m.Path] = m
	}
	assert.Equal(t, 1, byPath["pkg"].Functions)
	assert.Equal(t, 2, byPath["pkg.api"].Functions)
	assert.Equal(t, 1, byPath["pkg.api"].Classes)

	// Visited modules with no records still appear.
	assert.Equal(t, ModuleSummary{Path: "pkg.empty"}, byPath["pkg.empty"])
}
