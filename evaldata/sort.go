package evaldata

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects one of the three query list orderings.
type SortOrder string

const (
	// SortWorst lists queries ascending by relevance rate.
	SortWorst SortOrder = "worst"
	// SortBest lists queries descending by relevance rate.
	SortBest SortOrder = "best"
	// SortAlphabetical lists queries by locale-aware query text order.
	SortAlphabetical SortOrder = "alphabetical"
)

// Valid reports whether o is one of the known orderings.
func (o SortOrder) Valid() bool {
	switch o {
	case SortWorst, SortBest, SortAlphabetical:
		return true
	}
	return false
}

var queryCollator = collate.New(language.Und)

// SortSummaries returns a copy of in ordered per o. Ties keep their original
// relative order; the input slice is never mutated. An unknown order returns
// the copy unsorted.
func SortSummaries(in []QuerySummary, o SortOrder) []QuerySummary {
	out := make([]QuerySummary, len(in))
	copy(out, in)
	switch o {
	case SortWorst:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RelevanceRate < out[j].RelevanceRate })
	case SortBest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RelevanceRate > out[j].RelevanceRate })
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return queryCollator.CompareString(out[i].Query, out[j].Query) < 0
		})
	}
	return out
}

// FilterSummaries returns the summaries whose query text contains term,
// matched case-insensitively. An empty term matches everything.
func FilterSummaries(in []QuerySummary, term string) []QuerySummary {
	key := normalizeKey(term)
	if key == "" {
		out := make([]QuerySummary, len(in))
		copy(out, in)
		return out
	}
	out := make([]QuerySummary, 0, len(in))
	for _, s := range in {
		if strings.Contains(normalizeKey(s.Query), key) {
			out = append(out, s)
		}
	}
	return out
}

// ResultsByScore returns a copy of results sorted descending by score,
// keeping the canonical order of the input untouched. Ties are stable.
func ResultsByScore(results []Result) []Result {
	out := make([]Result, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
