package catalog

import (
	"testing"

	"apilens/internal/library"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptExposesModuleTree(t *testing.T) {
	root := Adapt(openreviewRoot)
	assert.Equal(t, "openreview", root.Path())

	subs, err := root.Submodules()
	require.NoError(t, err)

	var paths []string
	for _, s := range subs {
		paths = append(paths, s.Path())
	}
	assert.Equal(t, []string{"openreview.api", "openreview.tools", "openreview.venue"}, paths)
}

func TestAdaptSharesIdentityAcrossPaths(t *testing.T) {
	shared := &Func{Name: "f"}
	root := &Module{
		Path:  "pkg",
		Funcs: []*Func{shared},
		Submods: []*Module{
			{Path: "pkg.sub", Funcs: []*Func{shared}},
		},
	}

	res := library.Walk(Adapt(root))

	var ids []any
	for _, r := range res.Raws {
		ids = append(ids, r.Object.Underlying())
	}
	require.Len(t, ids, 2)
	assert.Same(t, ids[0], ids[1])
}

func TestAdaptMethodKinds(t *testing.T) {
	cls := &Class{Name: "C", Methods: []*Func{
		{Name: "plain"},
		{Name: "from_json", Kind: library.KindClassMethod},
		{Name: "helper", Kind: library.KindStaticMethod},
	}}
	root := &Module{Path: "pkg", Classes: []*Class{cls}}

	objs, err := Adapt(root).Objects()
	require.NoError(t, err)
	require.Len(t, objs, 1)

	adapted, ok := objs[0].(library.Class)
	require.True(t, ok)
	assert.Equal(t, library.KindClass, adapted.Kind())

	methods, err := adapted.Methods()
	require.NoError(t, err)

	kinds := make(map[string]library.Kind)
	for _, m := range methods {
		kinds[m.Name()] = m.Kind()
	}
	assert.Equal(t, library.KindMethod, kinds["plain"])
	assert.Equal(t, library.KindClassMethod, kinds["from_json"])
	assert.Equal(t, library.KindStaticMethod, kinds["helper"])
}

func TestOpenReviewCatalogContents(t *testing.T) {
	res := library.Walk(OpenReview())

	assert.Equal(t, []string{"openreview", "openreview.api", "openreview.tools", "openreview.venue"}, res.Modules)
	assert.Empty(t, res.Skips)

	byPath := make(map[string]library.Raw)
	for _, r := range res.Raws {
		byPath[r.Path] = r
	}

	for _, want := range []string{
		"openreview.Client",
		"openreview.Client.get_notes",
		"openreview.api.OpenReviewClient",
		"openreview.api.OpenReviewClient.post_note_edit",
		"openreview.api.Invitation",
		"openreview.api.Note.from_json",
		"openreview.api.Group.add_member",
		"openreview.api.Edge",
		"openreview.api.Tag",
		"openreview.tools.get_profiles",
		"openreview.tools.get_own_reviews",
		"openreview.venue.GroupBuilder.build_groups",
	} {
		assert.Contains(t, byPath, want)
	}

	assert.Equal(t, library.KindClassMethod, byPath["openreview.api.Note.from_json"].Object.Kind())
	assert.Equal(t, library.KindClass, byPath["openreview.api.Note"].Object.Kind())

	// Constructors are declared so rejection reporting can see them.
	assert.Contains(t, byPath, "openreview.Client.__init__")
}
