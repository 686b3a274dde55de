package lang

import "unicode"

// Script represents a script family used to select language-specific
// classification rules. The zero value is Latin, the safe default for
// mixed or unrecognized text.
type Script int

const (
	// Latin covers Western and Central European languages.
	Latin Script = iota
	// Cyrillic covers Russian, Ukrainian, Bulgarian, etc.
	Cyrillic
	// Arabic covers Arabic-script languages (Arabic, Persian, Urdu).
	Arabic
	// CJK covers Chinese ideographs, Japanese kana, and Hangul.
	CJK
)

// String returns a string representation of the script family.
func (s Script) String() string {
	switch s {
	case Latin:
		return "latin"
	case Cyrillic:
		return "cyrillic"
	case Arabic:
		return "arabic"
	case CJK:
		return "cjk"
	default:
		return "unknown"
	}
}

// HasCase reports whether the script distinguishes upper and lower case.
// All-caps and title-case heading signals only apply to case-bearing
// scripts.
func (s Script) HasCase() bool {
	return s == Latin || s == Cyrillic
}

// DetectScript analyzes a text sample and returns its dominant script
// family by counting characters in each family's Unicode ranges. Ties are
// broken by declaration order (Latin > Cyrillic > Arabic > CJK), so Latin
// wins for ambiguous or empty samples. Pure function of its input.
func DetectScript(sample string) Script {
	var counts [4]int

	for _, r := range sample {
		if unicode.IsSpace(r) || unicode.IsDigit(r) || unicode.IsPunct(r) {
			continue
		}
		switch {
		case isLatin(r):
			counts[Latin]++
		case isCyrillic(r):
			counts[Cyrillic]++
		case isArabic(r):
			counts[Arabic]++
		case isCJK(r):
			counts[CJK]++
		}
	}

	best := Latin
	for s := Cyrillic; s <= CJK; s++ {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}

// isLatin reports whether r is in a Latin Unicode block.
// This includes:
//   - Basic Latin: U+0041–U+024F (letters only; digits and punctuation
//     are filtered before classification)
func isLatin(r rune) bool {
	return (r >= 0x0041 && r <= 0x007A) ||
		(r >= 0x00C0 && r <= 0x024F)
}

// isCyrillic reports whether r is in a Cyrillic Unicode block.
// This includes:
//   - Cyrillic: U+0400–U+04FF
//   - Cyrillic Supplement: U+0500–U+052F
func isCyrillic(r rune) bool {
	return (r >= 0x0400 && r <= 0x04FF) ||
		(r >= 0x0500 && r <= 0x052F)
}

// isArabic reports whether r is in an Arabic Unicode block.
// This includes:
//   - Arabic: U+0600–U+06FF
//   - Arabic Supplement: U+0750–U+077F
//   - Arabic Presentation Forms-A: U+FB50–U+FDFF
//   - Arabic Presentation Forms-B: U+FE70–U+FEFF
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// isCJK reports whether r is in a CJK Unicode block.
// This includes:
//   - CJK Unified Ideographs: U+4E00–U+9FFF
//   - CJK Extension A: U+3400–U+4DBF
//   - Hiragana: U+3040–U+309F
//   - Katakana: U+30A0–U+30FF
//   - Hangul Syllables: U+AC00–U+D7AF
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0xAC00 && r <= 0xD7AF)
}
