package heading

import (
	"regexp"
	"strings"

	"github.com/tsawler/contour/lang"
	"github.com/tsawler/contour/model"
)

// Title selection constants.
const (
	// TitleMaxPages restricts the candidate pool to the first pages;
	// titles do not appear later.
	TitleMaxPages = 2

	// TitleTopBoost is the maximum positional boost, awarded in full to a
	// span at the very top of the page and fading linearly toward the
	// bottom.
	TitleTopBoost = 0.20

	// TitleMaxFontBoost is awarded to spans set in the single largest
	// font size seen on the title pages. The largest type on the opening
	// pages is almost always the title.
	TitleMaxFontBoost = 0.30

	// TitleFloor is the minimum score for a title to be reported at all.
	// Below it the extractor returns an empty title rather than inventing
	// one.
	TitleFloor = 0.50

	// Title length bounds in runes; tighter than heading bounds because
	// very short fragments are decoration and very long ones are
	// paragraphs.
	TitleMinLen = 5
	TitleMaxLen = 150
)

// runningHeaderRe matches running-header prefixes that masquerade as
// prominent first-page text.
var runningHeaderRe = regexp.MustCompile(`(?i)^(?:page|页|頁)(\s|$)`)

// ExtractTitle selects the document title from the spans of the first
// pages. exclude holds texts already chosen as outline H1 entries; the
// returned title, if non-empty, is guaranteed not to be among them.
//
// Candidates are scored with the heading composite plus a positional boost
// for spans near the top of the page and a boost for the largest font on
// the title pages. Section headings, bare page numbers, running headers,
// and stopwords are filtered out. If nothing clears TitleFloor the title
// is empty: the extractor never invents text.
func ExtractTitle(spans []model.TextSpan, profile *lang.Profile, stats FontStats, exclude map[string]struct{}) string {
	// The max-font reference is computed over all spans on the title
	// pages, not just surviving candidates; otherwise filtering out the
	// real (say, numbered) largest text would promote body text.
	maxFont, maxY := 0.0, 0.0
	for _, s := range spans {
		if s.Page > TitleMaxPages {
			continue
		}
		if s.FontSize > maxFont {
			maxFont = s.FontSize
		}
		if s.BBox.Y > maxY {
			maxY = s.BBox.Y
		}
	}

	best := ""
	bestScore := 0.0

	for _, s := range spans {
		if s.Page > TitleMaxPages {
			continue
		}
		text := strings.TrimSpace(s.Text)
		if n := len([]rune(text)); n < TitleMinLen || n > TitleMaxLen {
			continue
		}
		if pageNumberRe.MatchString(text) || runningHeaderRe.MatchString(text) {
			continue
		}
		if profile.IsStopword(strings.ToLower(text)) {
			continue
		}
		if _, taken := exclude[text]; taken {
			continue
		}

		match := profile.Match(text)
		if match.Strong() {
			// Numbered or keyword-prefixed text is a section heading,
			// not a title.
			continue
		}

		score := WeightPattern * patternStrength(match)
		score += WeightFont * normalizeRatio(stats.Ratio(s.FontSize))
		if s.Bold {
			score += BoldBonus
		}
		score += WeightLength

		if maxY > 0 {
			pos := 1.0 - s.BBox.Y/maxY
			if pos < 0 {
				pos = 0
			}
			score += TitleTopBoost * pos
		}
		if maxFont > 0 && s.FontSize >= maxFont {
			score += TitleMaxFontBoost
		}

		if score > bestScore {
			bestScore = score
			best = text
		}
	}

	if bestScore < TitleFloor {
		return ""
	}
	return best
}
