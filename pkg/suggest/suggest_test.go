package suggest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	candidates := []string{"color", "colour", "classify", "long", "level", "sort"}

	t.Run("typo", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"color", "colour"}, FindSimilar("colr", candidates, 3))
	})
	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		got := FindSimilar("lev", candidates, 3)
		require.Contains(t, got, "level")
	})
	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"sort"}, FindSimilar("SORT", candidates, 1))
	})
	t.Run("nothing close", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, FindSimilar("zzzzzzzz", candidates, 3))
	})
	t.Run("limits", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, FindSimilar("", candidates, 3))
		require.Empty(t, FindSimilar("color", candidates, 0))
		require.Len(t, FindSimilar("colo", candidates, 1), 1)
	})
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, levenshtein("sort", "sort"))
	require.Equal(t, 1, levenshtein("colr", "color"))
	require.Equal(t, 3, levenshtein("kitten", "sitting"))
	require.Equal(t, 4, levenshtein("", "long"))
}
