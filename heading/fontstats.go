package heading

import "github.com/tsawler/contour/model"

// defaultBaseline is assumed when a document supplies no usable font
// sizes at all.
const defaultBaseline = 12.0

// baselineBucket is the rounding granularity for baseline detection.
// Half-point buckets absorb the sub-point jitter PDF producers introduce
// without merging genuinely different sizes.
const baselineBucket = 0.5

// bodyRatioCutoff is the font ratio at or below which a non-bold span is
// never a heading candidate. Body text sits at ratio 1.0; the 5% margin
// covers rounding differences between fonts.
const bodyRatioCutoff = 1.05

// FontStats holds document-wide typographic baselines derived from all
// spans of a document.
type FontStats struct {
	// Baseline is the body-text font size: the most frequent rounded
	// size, weighted by text volume.
	Baseline float64
}

// Analyze derives font statistics from a document's spans. The baseline is
// the modal half-point bucket weighted by rune count, since body text
// dominates a document by volume rather than by span count. Deterministic;
// no external state.
func Analyze(spans []model.TextSpan) FontStats {
	counts := make(map[int]int)
	for _, s := range spans {
		if s.FontSize <= 0 || s.IsEmpty() {
			continue
		}
		bucket := int(s.FontSize / baselineBucket)
		counts[bucket] += len([]rune(s.Text))
	}

	bestBucket, bestCount := 0, 0
	for bucket, count := range counts {
		if count > bestCount || (count == bestCount && bucket < bestBucket) {
			bestBucket = bucket
			bestCount = count
		}
	}

	if bestCount == 0 {
		return FontStats{Baseline: defaultBaseline}
	}
	return FontStats{Baseline: float64(bestBucket) * baselineBucket}
}

// Ratio returns size divided by the body baseline, the core typographic
// signal.
func (f FontStats) Ratio(size float64) float64 {
	if f.Baseline <= 0 {
		return 1.0
	}
	return size / f.Baseline
}

// IsBodyText reports whether a span is typographically indistinguishable
// from body text: at or below the ratio cutoff and not bold. Such spans
// are skipped by the scorer unless an explicit pattern matches.
func (f FontStats) IsBodyText(s model.TextSpan) bool {
	return f.Ratio(s.FontSize) <= bodyRatioCutoff && !s.Bold
}
