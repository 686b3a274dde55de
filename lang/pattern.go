package lang

import (
	"regexp"
	"strings"
	"unicode"
)

// Class identifies which kind of heading pattern a span matched. Classes
// are ordered by strength: numbered and keyword matches are strong signals,
// caps and title case are weak and never determine a level on their own.
type Class int

const (
	ClassNone Class = iota
	ClassNumbered
	ClassKeyword
	ClassCaps
	ClassTitleCase
)

// String returns a string representation of the pattern class.
func (c Class) String() string {
	switch c {
	case ClassNumbered:
		return "numbered"
	case ClassKeyword:
		return "keyword"
	case ClassCaps:
		return "caps"
	case ClassTitleCase:
		return "title_case"
	default:
		return "none"
	}
}

// NoDepth marks a match that carries no numbering depth; the level must
// come from typography instead.
const NoDepth = -1

// Match is the result of pattern classification for one span.
type Match struct {
	Class Class
	// Depth is the nesting depth encoded in the pattern itself: 0 for H1,
	// 1 for H2, 2 for H3, NoDepth when the pattern implies no depth.
	Depth int
}

// Matched reports whether any pattern matched.
func (m Match) Matched() bool {
	return m.Class != ClassNone
}

// Strong reports whether the match is a strong (numbered or keyword)
// signal.
func (m Match) Strong() bool {
	return m.Class == ClassNumbered || m.Class == ClassKeyword
}

var (
	// numberedRe matches a leading dotted numeral sequence ("1", "1.1",
	// "1.1.1", optionally with a trailing period) followed by content.
	// A bare numeral with nothing after it is a page number, not a
	// heading, and deliberately does not match.
	numberedRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s*[^\d.\s]`)

	// numberedExtraRes are numbering forms that mark a heading without
	// encoding a depth: roman numerals, letter prefixes, and bracketed
	// numbers. Their level comes from typography.
	numberedExtraRes = []*regexp.Regexp{
		regexp.MustCompile(`^[IVXLCDM]+\.\s+\S`),
		regexp.MustCompile(`^[A-Z]\.\s+\S`),
		regexp.MustCompile(`^\(\d+\)\s*\S`),
		regexp.MustCompile(`^\[\d+\]\s*\S`),
	}
)

// maxDepth is the deepest numbering level distinguished; anything deeper
// is clamped (spec only models H1-H3).
const maxDepth = 2

// minCapsLetters is the minimum number of letters for the all-caps signal;
// shorter acronym-like runs ("AB", "UN") say nothing about structure.
const minCapsLetters = 3

// Match classifies text against the profile's pattern set, in order of
// decreasing strength: numbered, chapter/section keyword, all-caps, title
// case. Caps and title case are skipped for scripts without letter case.
func (p *Profile) Match(text string) Match {
	text = strings.TrimSpace(text)
	if text == "" {
		return Match{Class: ClassNone, Depth: NoDepth}
	}

	// 1. Dotted numeral prefix: depth fixes the level outright.
	if m := numberedRe.FindStringSubmatch(text); m != nil {
		depth := strings.Count(m[1], ".")
		if depth > maxDepth {
			depth = maxDepth
		}
		return Match{Class: ClassNumbered, Depth: depth}
	}
	for _, re := range numberedExtraRes {
		if re.MatchString(text) {
			return Match{Class: ClassNumbered, Depth: NoDepth}
		}
	}

	// 2. Localized chapter/section keyword: H1 unless the numeral suffix
	// itself nests deeper ("Section 1.2").
	if p.keywordNum != nil {
		if m := p.keywordNum.FindStringSubmatch(text); m != nil {
			depth := strings.Count(m[1], ".")
			if depth > maxDepth {
				depth = maxDepth
			}
			return Match{Class: ClassKeyword, Depth: depth}
		}
	}
	if p.keywordAny != nil && p.keywordAny.MatchString(text) {
		return Match{Class: ClassKeyword, Depth: 0}
	}

	// 3-4. Casing signals, for case-bearing scripts only.
	if p.HasCase() {
		if isAllCaps(text) {
			return Match{Class: ClassCaps, Depth: NoDepth}
		}
		if isTitleCase(text) {
			return Match{Class: ClassTitleCase, Depth: NoDepth}
		}
	}

	return Match{Class: ClassNone, Depth: NoDepth}
}

// isAllCaps reports whether text consists entirely of upper-case letters
// (plus digits, punctuation, and spaces) with at least minCapsLetters
// letters.
func isAllCaps(text string) bool {
	letters := 0
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			letters++
		}
	}
	return letters >= minCapsLetters
}

// isTitleCase reports whether every word starts with an upper-case letter.
// Short connective words ("of", "und", "de") may stay lower-case when not
// in first position. Requires at least two words and at least one
// lower-case letter so all-caps text does not double-match.
func isTitleCase(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 {
		return false
	}

	hasLower := false
	for i, w := range words {
		r := firstLetter(w)
		if r == 0 {
			continue
		}
		if unicode.IsLower(r) {
			hasLower = true
			if i == 0 || len([]rune(w)) > 3 {
				return false
			}
			continue
		}
		for _, rr := range w {
			if unicode.IsLower(rr) {
				hasLower = true
				break
			}
		}
	}
	return hasLower
}

// firstLetter returns the first letter rune of a word, or 0 if the word
// contains no letters.
func firstLetter(w string) rune {
	for _, r := range w {
		if unicode.IsLetter(r) {
			return r
		}
	}
	return 0
}
