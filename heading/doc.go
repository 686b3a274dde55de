// Package heading turns text spans into scored, level-assigned heading
// candidates.
//
// Classification reconciles three independently noisy signals:
//
//   - explicit patterns (numbering, chapter/section keywords, casing),
//     supplied by a lang.Profile
//   - relative typography (font size versus the document body baseline,
//     bold rendering), computed by [Analyze]
//   - context (span length, stopwords, position for title extraction)
//
// The [Scorer] combines the signals into a single confidence score with
// fixed, documented weights. [AssignLevels] maps accepted candidates to
// H1/H2/H3, with explicit numbering depth always outranking typography.
// [ExtractTitle] selects the document title from the first pages.
package heading
