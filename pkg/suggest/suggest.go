// Package suggest finds the candidates closest to a misspelled word.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// FindSimilar returns up to limit candidates that are close to target, best match first. Matching is
// case-insensitive. A candidate qualifies if it shares a prefix with target or is within an edit
// distance of roughly a third of its length.
func FindSimilar(target string, candidates []string, limit int) []string {
	if target == "" || limit <= 0 {
		return nil
	}
	target = strings.ToLower(target)

	type scored struct {
		name  string
		score int
	}
	var matches []scored
	for _, c := range candidates {
		lower := strings.ToLower(c)
		d := levenshtein(target, lower)
		threshold := max(len(lower)/3, 1)
		switch {
		case strings.HasPrefix(lower, target) || strings.HasPrefix(target, lower):
			matches = append(matches, scored{name: c, score: d - len(lower)})
		case d <= threshold:
			matches = append(matches, scored{name: c, score: d})
		}
	}
	slices.SortStableFunc(matches, func(a, b scored) int {
		return cmp.Compare(a.score, b.score)
	})

	var out []string
	for i := 0; i < len(matches) && i < limit; i++ {
		out = append(out, matches[i].name)
	}
	return out
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
