package include

import (
	"slices"
	"strings"
)

// Separator delimits the segments of an include path.
const Separator = "."

// Group is the set of include suffixes sharing the same head segment.
type Group struct {
	// Head is the first segment, a relational field name at the current depth.
	Head string
	// Suffixes are the raw remainders after the first separator, deeper dots preserved.
	// Empty when every path of the group ends at Head.
	Suffixes []string
}

// Groups is an ordered grouping of include paths, heads keep their first-seen order.
type Groups []Group

// Split returns the head segment of path and the raw suffix after the first separator.
// ok is false when path has no suffix.
func Split(path string) (head, suffix string, ok bool) {
	return strings.Cut(path, Separator)
}

// GroupPaths groups paths by their head segment.
// Multiple paths sharing a head contribute a unioned, duplicate free suffix set.
// A path without separator contributes its head only; empty paths are ignored.
func GroupPaths(paths []string) Groups {
	var groups Groups

	index := make(map[string]int, len(paths))

	for _, p := range paths {
		if p == "" {
			continue
		}

		head, suffix, hasSuffix := Split(p)

		i, seen := index[head]
		if !seen {
			i = len(groups)
			index[head] = i
			groups = append(groups, Group{Head: head})
		}

		if hasSuffix && suffix != "" && !slices.Contains(groups[i].Suffixes, suffix) {
			groups[i].Suffixes = append(groups[i].Suffixes, suffix)
		}
	}

	return groups
}

// Normalize trims whitespace, drops empty and duplicate paths and sorts the result.
// The normalized form is order independent and used for cache keys.
func Normalize(paths []string) []string {
	out := make([]string, 0, len(paths))

	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		out = append(out, p)
	}

	slices.Sort(out)

	return slices.Compact(out)
}

// Key returns a stable string for a path set, equal for sets with equal normalized form.
func Key(paths []string) string {
	return strings.Join(Normalize(paths), ",")
}

// Join builds an include path from segments.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}
