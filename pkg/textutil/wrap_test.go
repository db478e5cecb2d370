package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{name: "empty", input: "", width: 10, want: []string{""}},
		{name: "fits", input: "list all files", width: 20, want: []string{"list all files"}},
		{name: "wraps", input: "list all files in the tree", width: 10, want: []string{"list all", "files in", "the tree"}},
		{name: "long word", input: "a supercalifragilistic word", width: 5, want: []string{"a", "supercalifragilistic", "word"}},
		{name: "collapses spaces", input: "  one   two  ", width: 20, want: []string{"one two"}},
		{name: "no width", input: "one two", width: 0, want: []string{"one two"}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Wrap(tt.input, tt.width), tt.name)
	}
}
