package index

import (
	"errors"
	"testing"

	"apilens/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWith(t *testing.T, paths ...string) *Index {
	t.Helper()
	var fns []record.FunctionRecord
	for _, p := range paths {
		fns = append(fns, record.FunctionRecord{Path: p, Name: p, Module: "pkg", Kind: "function"})
	}
	idx, err := Build(fns, nil, []string{"pkg"}, nil, nil)
	require.NoError(t, err)
	return idx
}

func TestHolderRefreshSwapsGeneration(t *testing.T) {
	first := buildWith(t, "pkg.a")
	second := buildWith(t, "pkg.a", "pkg.b")

	h := NewHolder(first)
	captured := h.Current()

	err := h.Refresh(func() (*Index, error) { return second, nil })
	require.NoError(t, err)

	assert.Same(t, second, h.Current())
	// The captured generation is untouched.
	assert.Len(t, captured.Functions(), 1)
}

func TestHolderFailedRefreshKeepsOldGeneration(t *testing.T) {
	first := buildWith(t, "pkg.a")
	h := NewHolder(first)

	buildErr := errors.New("reflection broke")
	err := h.Refresh(func() (*Index, error) { return nil, buildErr })

	assert.ErrorIs(t, err, buildErr)
	assert.Same(t, first, h.Current())
}

func TestHolderRejectsOverlappingRefresh(t *testing.T) {
	h := NewHolder(buildWith(t, "pkg.a"))
	slow := buildWith(t, "pkg.b")
	fast := buildWith(t, "pkg.c")

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- h.Refresh(func() (*Index, error) {
			close(started)
			<-release
			return slow, nil
		})
	}()

	<-started
	err := h.Refresh(func() (*Index, error) { return fast, nil })
	assert.ErrorIs(t, err, ErrRefreshInFlight)

	close(release)
	require.NoError(t, <-done)

	require.Len(t, h.Current().Functions(), 1)
	assert.Equal(t, "pkg.b", h.Current().Functions()[0].Path)
}
