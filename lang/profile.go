package lang

import "regexp"

// Profile carries the script-specific data used to classify headings:
// chapter/section keyword patterns, stopwords, and casing behavior.
// Profiles are immutable; ProfileFor returns shared instances.
type Profile struct {
	// Script is the family this profile serves.
	Script Script

	// keywordNum matches a localized chapter/section keyword followed by
	// a numeral; capture group 1 is the (possibly dotted) numeral, whose
	// depth refines the level ("Section 1.2" nests one deeper). Nil for
	// scripts whose keyword forms carry no dotted numerals.
	keywordNum *regexp.Regexp

	// keywordAny matches a keyword heading without a usable numeral
	// suffix ("Chapter One", 第三章). Always implies a top-level heading.
	keywordAny *regexp.Regexp

	// stopwords disqualify spans whose entire trimmed text is a
	// navigational label rather than a heading ("Contents", "Page",
	// 目次). Keys are lowercase.
	stopwords map[string]struct{}
}

// HasCase reports whether the profile's script distinguishes letter case.
func (p *Profile) HasCase() bool {
	return p.Script.HasCase()
}

// IsStopword reports whether the lowercased trimmed text is exactly one of
// the profile's stopwords.
func (p *Profile) IsStopword(lower string) bool {
	_, ok := p.stopwords[lower]
	return ok
}

// ProfileFor returns the shared immutable profile for a script family.
func ProfileFor(s Script) *Profile {
	if p, ok := profiles[s]; ok {
		return p
	}
	return profiles[Latin]
}

func stopwordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// profiles is read-only process-wide state, initialized once and shared
// freely across concurrent document pipelines.
var profiles = map[Script]*Profile{
	Latin: {
		Script: Latin,
		keywordNum: regexp.MustCompile(`(?i)^(?:chapter|section|part|appendix|` +
			`kapitel|abschnitt|teil|anhang|` +
			`chapitre|section|partie|annexe|` +
			`capítulo|sección|parte|apéndice|` +
			`capitolo|sezione|` +
			`capítulo|seção)\s+(\d+(?:\.\d+)*)`),
		keywordAny: regexp.MustCompile(`(?i)^(?:chapter|section|part|appendix|` +
			`kapitel|abschnitt|teil|` +
			`chapitre|partie|` +
			`capítulo|sección|` +
			`capitolo|sezione|` +
			`seção|parte)\s+\S`),
		stopwords: stopwordSet(
			"contents", "table of contents", "references", "bibliography",
			"index", "page", "appendix",
			"inhaltsverzeichnis", "literaturverzeichnis", "literatur", "seite",
			"table des matières", "références", "bibliographie",
			"índice", "referencias", "bibliografía",
			"indice", "riferimenti", "referências",
		),
	},
	Cyrillic: {
		Script:     Cyrillic,
		keywordNum: regexp.MustCompile(`(?i)^(?:глава|раздел|часть|приложение)\s+(\d+(?:\.\d+)*)`),
		keywordAny: regexp.MustCompile(`(?i)^(?:глава|раздел|часть|приложение)\s+\S`),
		stopwords: stopwordSet(
			"содержание", "оглавление", "литература", "библиография",
			"приложение", "страница",
		),
	},
	Arabic: {
		Script:     Arabic,
		keywordNum: regexp.MustCompile(`^(?:الفصل|الباب|القسم|الجزء|الملحق)\s+([0-9\x{0660}-\x{0669}]+(?:\.[0-9\x{0660}-\x{0669}]+)*)`),
		keywordAny: regexp.MustCompile(`^(?:الفصل|الباب|القسم|الجزء|الملحق)\s+\S`),
		stopwords: stopwordSet(
			"فهرس", "المحتويات", "مراجع", "المراجع", "صفحة",
		),
	},
	CJK: {
		Script:     CJK,
		keywordNum: nil,
		keywordAny: regexp.MustCompile(`^第[0-9０-９一二三四五六七八九十百千]+[章節节部篇編编]`),
		stopwords: stopwordSet(
			"目次", "目录", "目錄", "参考文献", "參考文獻", "索引",
		),
	},
}
