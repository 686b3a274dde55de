package lang

import "testing"

func TestMatchNumbered(t *testing.T) {
	p := ProfileFor(Latin)

	tests := []struct {
		name     string
		text     string
		expected Match
	}{
		{"single level", "1. Introduction", Match{ClassNumbered, 0}},
		{"single level no dot", "1 Introduction", Match{ClassNumbered, 0}},
		{"two levels", "1.1 Background", Match{ClassNumbered, 1}},
		{"three levels", "2.3.1 Experimental Setup", Match{ClassNumbered, 2}},
		{"deeper than three clamps", "1.2.3.4 Detail", Match{ClassNumbered, 2}},
		{"no space after dot", "3.Results", Match{ClassNumbered, 0}},
		{"roman numeral", "IV. Results", Match{ClassNumbered, NoDepth}},
		{"letter prefix", "A. First Appendix", Match{ClassNumbered, NoDepth}},
		{"parenthesized", "(1) Overview", Match{ClassNumbered, NoDepth}},
		{"bracketed", "[2] Related Work", Match{ClassNumbered, NoDepth}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Match(tt.text); got != tt.expected {
				t.Errorf("Match(%q) = %+v, want %+v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestMatchNumberedRejectsBareNumbers(t *testing.T) {
	p := ProfileFor(Latin)

	// A bare numeral is a page number, not a heading.
	for _, text := range []string{"42", "1.1", "1.2.3", "12."} {
		if got := p.Match(text); got.Class == ClassNumbered {
			t.Errorf("Match(%q) classified a bare numeral as numbered", text)
		}
	}
}

func TestMatchKeyword(t *testing.T) {
	tests := []struct {
		name     string
		script   Script
		text     string
		expected Match
	}{
		{"english chapter", Latin, "Chapter 3: Results", Match{ClassKeyword, 0}},
		{"lowercase keyword", Latin, "chapter 3 results", Match{ClassKeyword, 0}},
		{"section with dotted numeral", Latin, "Section 1.2 Scope", Match{ClassKeyword, 1}},
		{"german", Latin, "Kapitel 2 Grundlagen", Match{ClassKeyword, 0}},
		{"french", Latin, "Chapitre 4 Méthodologie", Match{ClassKeyword, 0}},
		{"spanish", Latin, "Capítulo 7 Conclusiones", Match{ClassKeyword, 0}},
		{"spelled-out number", Latin, "Chapter One", Match{ClassKeyword, 0}},
		{"russian", Cyrillic, "Глава 5 Обсуждение", Match{ClassKeyword, 0}},
		{"russian dotted", Cyrillic, "Раздел 2.1 Методы", Match{ClassKeyword, 1}},
		{"japanese chapter", CJK, "第1章 はじめに", Match{ClassKeyword, 0}},
		{"japanese kanji number", CJK, "第三章 結論", Match{ClassKeyword, 0}},
		{"chinese section", CJK, "第2节 方法", Match{ClassKeyword, 0}},
		{"arabic chapter", Arabic, "الفصل 3 النتائج", Match{ClassKeyword, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProfileFor(tt.script)
			if got := p.Match(tt.text); got != tt.expected {
				t.Errorf("Match(%q) = %+v, want %+v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestMatchCasing(t *testing.T) {
	p := ProfileFor(Latin)

	tests := []struct {
		name     string
		text     string
		expected Class
	}{
		{"all caps", "EXPERIMENTAL RESULTS", ClassCaps},
		{"caps with digits", "RESULTS 2024", ClassCaps},
		{"too few caps letters", "AB", ClassNone},
		{"title case", "Getting Started Guide", ClassTitleCase},
		{"title case with connective", "The Art of War", ClassTitleCase},
		{"sentence case", "This is ordinary body text", ClassNone},
		{"single word", "Introduction", ClassNone},
		{"lowercase", "plain body text here", ClassNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Match(tt.text).Class; got != tt.expected {
				t.Errorf("Match(%q).Class = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestMatchCasingDisabledForUncasedScripts(t *testing.T) {
	// CJK and Arabic have no case distinction; caps/title-case rules must
	// stay disabled so Latin fragments inside such documents do not
	// produce spurious weak matches.
	for _, s := range []Script{CJK, Arabic} {
		p := ProfileFor(s)
		if got := p.Match("EXPERIMENTAL RESULTS"); got.Class != ClassNone {
			t.Errorf("%v profile classified caps text as %v", s, got.Class)
		}
		if got := p.Match("Getting Started Guide"); got.Class != ClassNone {
			t.Errorf("%v profile classified title case text as %v", s, got.Class)
		}
	}
}

func TestMatchCyrillicCasing(t *testing.T) {
	p := ProfileFor(Cyrillic)

	if got := p.Match("ЗАКЛЮЧЕНИЕ И ВЫВОДЫ").Class; got != ClassCaps {
		t.Errorf("cyrillic caps = %v, want ClassCaps", got)
	}
	if got := p.Match("Основные Положения Работы").Class; got != ClassTitleCase {
		t.Errorf("cyrillic title case = %v, want ClassTitleCase", got)
	}
}

func TestMatchEmpty(t *testing.T) {
	p := ProfileFor(Latin)
	if got := p.Match("   "); got.Matched() {
		t.Errorf("Match(blank) = %+v, want none", got)
	}
}

func TestMatchStrong(t *testing.T) {
	tests := []struct {
		m        Match
		expected bool
	}{
		{Match{ClassNumbered, 0}, true},
		{Match{ClassKeyword, 0}, true},
		{Match{ClassCaps, NoDepth}, false},
		{Match{ClassTitleCase, NoDepth}, false},
		{Match{ClassNone, NoDepth}, false},
	}

	for _, tt := range tests {
		if got := tt.m.Strong(); got != tt.expected {
			t.Errorf("%+v.Strong() = %v, want %v", tt.m, got, tt.expected)
		}
	}
}

func TestClassString(t *testing.T) {
	tests := []struct {
		class    Class
		expected string
	}{
		{ClassNone, "none"},
		{ClassNumbered, "numbered"},
		{ClassKeyword, "keyword"},
		{ClassCaps, "caps"},
		{ClassTitleCase, "title_case"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.expected {
			t.Errorf("Class(%d).String() = %q, want %q", tt.class, got, tt.expected)
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	p := ProfileFor(Latin)
	texts := []string{
		"1.2.3 Experimental Setup",
		"Chapter 3: Results",
		"EXPERIMENTAL RESULTS",
		"This is ordinary body text that matches nothing at all.",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Match(texts[i%len(texts)])
	}
}
