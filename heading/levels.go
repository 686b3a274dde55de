package heading

import (
	"sort"

	"github.com/tsawler/contour/lang"
	"github.com/tsawler/contour/model"
)

// ratioBucket groups font ratios at 5% granularity when ranking candidate
// typography. Finer distinctions are rendering noise, not hierarchy.
const ratioBucket = 0.05

// AssignLevels maps accepted candidates to H1/H2/H3 and returns them with
// same-page duplicates removed (first occurrence in reading order wins).
//
// Priority:
//  1. A numbered match with an explicit depth fixes the level outright,
//     regardless of typography.
//  2. A keyword match is H1 unless its numeral suffix nests deeper.
//  3. Everything else is bucketed by the document-relative ranking of the
//     accepted candidates' font ratios: the largest ratio in use becomes
//     H1, the next H2, all smaller ones H3. Ranking is recomputed per
//     document because absolute font sizes vary by source.
func AssignLevels(cands []Candidate) []Candidate {
	if len(cands) == 0 {
		return cands
	}

	rank := ratioRanks(cands)

	result := make([]Candidate, 0, len(cands))
	seen := make(map[pageText]struct{}, len(cands))

	for _, c := range cands {
		key := pageText{page: c.Span.Page, text: c.Text}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		c.Level = levelFor(c, rank)
		result = append(result, c)
	}

	return result
}

type pageText struct {
	page int
	text string
}

// levelFor resolves one candidate's level per the priority rules.
func levelFor(c Candidate, rank map[int]model.HeadingLevel) model.HeadingLevel {
	if c.Match.Class == lang.ClassNumbered && c.Match.Depth != lang.NoDepth {
		return depthLevel(c.Match.Depth)
	}
	if c.Match.Class == lang.ClassKeyword {
		if c.Match.Depth != lang.NoDepth {
			return depthLevel(c.Match.Depth)
		}
		return model.Level1
	}

	if level, ok := rank[bucketOf(c.FontRatio)]; ok {
		return level
	}
	return model.Level3
}

// depthLevel converts a numbering depth (0-based) to a heading level.
func depthLevel(depth int) model.HeadingLevel {
	switch depth {
	case 0:
		return model.Level1
	case 1:
		return model.Level2
	default:
		return model.Level3
	}
}

// ratioRanks ranks the distinct font-ratio buckets used by candidates
// without a depth-bearing pattern, descending: largest bucket maps to H1,
// second to H2, the rest to H3.
func ratioRanks(cands []Candidate) map[int]model.HeadingLevel {
	bucketSet := make(map[int]struct{})
	for _, c := range cands {
		if c.Match.Strong() && c.Match.Depth != lang.NoDepth {
			continue
		}
		bucketSet[bucketOf(c.FontRatio)] = struct{}{}
	}

	buckets := make([]int, 0, len(bucketSet))
	for b := range bucketSet {
		buckets = append(buckets, b)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(buckets)))

	rank := make(map[int]model.HeadingLevel, len(buckets))
	for i, b := range buckets {
		switch i {
		case 0:
			rank[b] = model.Level1
		case 1:
			rank[b] = model.Level2
		default:
			rank[b] = model.Level3
		}
	}
	return rank
}

func bucketOf(ratio float64) int {
	return int(ratio / ratioBucket)
}
