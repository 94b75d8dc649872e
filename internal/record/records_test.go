package record

import (
	"testing"

	"apilens/internal/library"

	"github.com/stretchr/testify/assert"
)

func TestRenderSignature(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		sig  library.Signature
		want string
	}{
		{
			name: "no params",
			fn:   "to_json",
			sig:  library.Signature{Return: "dict"},
			want: "to_json() -> dict",
		},
		{
			name: "typed params with defaults",
			fn:   "get_notes",
			sig: library.Signature{
				Params: []library.Param{
					{Name: "id", Type: "str", HasDefault: true, Default: "None"},
					{Name: "limit", Type: "int", HasDefault: true, Default: "1000"},
				},
				Return: "list[Note]",
			},
			want: "get_notes(id: str = None, limit: int = 1000) -> list[Note]",
		},
		{
			name: "untyped default has no spaces",
			fn:   "f",
			sig: library.Signature{
				Params: []library.Param{{Name: "x", HasDefault: true, Default: "None"}},
			},
			want: "f(x=None)",
		},
		{
			name: "star params",
			fn:   "f",
			sig: library.Signature{
				Params: []library.Param{
					{Name: "a"},
					{Name: "args", Star: "*"},
					{Name: "kwargs", Star: "**"},
				},
			},
			want: "f(a, *args, **kwargs)",
		},
		{
			name: "unrepresentable default",
			fn:   "f",
			sig: library.Signature{
				Params: []library.Param{{Name: "cb", HasDefault: true}},
			},
			want: "f(cb=<unrepresentable>)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderSignature(tt.fn, tt.sig))
		})
	}
}
