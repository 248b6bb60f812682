package match

import (
	"cmp"
	"slices"
)

const (
	// DefaultMinScore is the minimum similarity for a candidate to be suggested.
	DefaultMinScore = 0.5
	// DefaultLimit is the maximum number of suggestions.
	DefaultLimit = 3
)

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates similar to name, best first.
// Candidates sharing a token with name are kept even below DefaultMinScore.
func Suggest(name string, candidates []string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}

	tokens := TokenizeIdent(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		s := Similarity(name, c)
		if s < DefaultMinScore && !sharesToken(tokens, TokenizeIdent(c)) {
			continue
		}

		ranked = append(ranked, scored{name: c, score: s})
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked[:min(limit, len(ranked))] {
		out = append(out, r.name)
	}

	return out
}

func sharesToken(a, b []string) bool {
	for _, t := range a {
		if len(t) > 2 && slices.Contains(b, t) {
			return true
		}
	}

	return false
}
