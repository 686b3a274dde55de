package heading

import (
	"regexp"
	"strings"

	"github.com/tsawler/contour/lang"
	"github.com/tsawler/contour/model"
)

// Scoring weights and bounds. The values encode a precision/recall
// tradeoff: explicit patterns dominate (a numbered or keyword match plus
// length validity always clears the threshold on its own), casing signals
// never suffice without typographic support, and a span at twice the body
// size is a heading even with no pattern at all.
const (
	// WeightPattern scales pattern strength: 1.0 for numbered/keyword
	// matches, 0.5 for caps/title case. The largest weight, reflecting
	// explicit-pattern priority.
	WeightPattern = 0.40

	// WeightFont scales the normalized font ratio.
	WeightFont = 0.30

	// BoldBonus is added for bold spans.
	BoldBonus = 0.15

	// WeightLength is added for spans within the valid heading length
	// range; out-of-range spans are rejected outright before scoring.
	WeightLength = 0.15

	// StopwordPenalty is subtracted when the full trimmed text is a
	// profile stopword ("Contents", "Page").
	StopwordPenalty = 0.20

	// AcceptThreshold is the minimum score for acceptance. Chosen so at
	// least one strong signal is required: pattern+length = 0.55 passes,
	// caps+length = 0.35 does not, bold+length = 0.30 does not.
	AcceptThreshold = 0.38

	// FontRatioCeiling is the ratio mapped to a full font signal; ratios
	// are normalized linearly between 1.0 and this value.
	FontRatioCeiling = 2.0

	// WeakPatternStrength is the pattern strength of caps/title-case
	// matches.
	WeakPatternStrength = 0.5
)

// Heading length bounds in runes. A heading is not a paragraph: anything
// outside these bounds is rejected regardless of score.
const (
	MinHeadingLen = 2
	MaxHeadingLen = 200
)

// pageNumberRe matches spans that are only digits, whitespace, and date
// punctuation - page numbers, dates, and folios, never headings.
var pageNumberRe = regexp.MustCompile(`^[\d\s\-/.]+$`)

// Candidate is a span under consideration as a heading, together with the
// signals computed for it. Candidates are transient: they exist only while
// an outline is being built.
type Candidate struct {
	// Span is the underlying text span.
	Span model.TextSpan

	// Text is the trimmed span text.
	Text string

	// Index is the span's position in the original document order, used
	// to preserve reading order within a page.
	Index int

	// Match is the pattern classification result.
	Match lang.Match

	// FontRatio is span size over the document body baseline.
	FontRatio float64

	// Score is the weighted composite confidence in [0, 1].
	Score float64

	// Level is assigned by AssignLevels; LevelUnknown until then.
	Level model.HeadingLevel
}

// Scorer computes composite heading scores for one document. It holds the
// document's language profile and font statistics; it has no other state
// and never mutates its inputs.
type Scorer struct {
	profile *lang.Profile
	stats   FontStats
}

// NewScorer creates a scorer for one document's profile and font
// statistics.
func NewScorer(profile *lang.Profile, stats FontStats) *Scorer {
	return &Scorer{profile: profile, stats: stats}
}

// Score evaluates every span and returns the accepted candidates in
// document order. A span is evaluated when it survives the body-text
// rejection filter or when an explicit pattern matches regardless of font
// (so a 10pt non-bold "1.1 Background" is still found); it is accepted
// when its composite score exceeds AcceptThreshold.
func (s *Scorer) Score(spans []model.TextSpan) []Candidate {
	var accepted []Candidate

	for i, span := range spans {
		text := strings.TrimSpace(span.Text)
		if text == "" {
			continue
		}
		if n := len([]rune(text)); n < MinHeadingLen || n > MaxHeadingLen {
			continue
		}
		if pageNumberRe.MatchString(text) {
			continue
		}

		match := s.profile.Match(text)
		if s.stats.IsBodyText(span) && !match.Matched() {
			continue
		}

		score := s.composite(span, text, match)
		if score <= AcceptThreshold {
			continue
		}

		accepted = append(accepted, Candidate{
			Span:      span,
			Text:      text,
			Index:     i,
			Match:     match,
			FontRatio: s.stats.Ratio(span.FontSize),
			Score:     score,
		})
	}

	return accepted
}

// composite computes the weighted score for a single span.
func (s *Scorer) composite(span model.TextSpan, text string, match lang.Match) float64 {
	score := WeightPattern * patternStrength(match)
	score += WeightFont * normalizeRatio(s.stats.Ratio(span.FontSize))
	if span.Bold {
		score += BoldBonus
	}
	score += WeightLength // length already validated
	if s.profile.IsStopword(strings.ToLower(text)) {
		score -= StopwordPenalty
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

// patternStrength maps a pattern class to its contribution: strong matches
// count fully, casing signals at half strength, no match contributes
// nothing.
func patternStrength(m lang.Match) float64 {
	switch {
	case m.Strong():
		return 1.0
	case m.Matched():
		return WeakPatternStrength
	default:
		return 0
	}
}

// normalizeRatio clamps a font ratio into [0, 1]: body size (1.0) maps to
// 0, FontRatioCeiling and above map to 1.
func normalizeRatio(ratio float64) float64 {
	n := (ratio - 1.0) / (FontRatioCeiling - 1.0)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
