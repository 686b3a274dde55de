package reader

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain text unchanged", "1. Introduction", "1. Introduction"},
		{"whitespace collapsed", "  1.   Introduction \t here ", "1. Introduction here"},
		{"fullwidth digits folded", "１.２ 背景", "1.2 背景"},
		{"ligature expanded", "ﬁrst ﬂight", "first flight"},
		{"fullwidth latin folded", "Ｃｈａｐｔｅｒ １", "Chapter 1"},
		{"control characters dropped", "a\x00b\x01c", "abc"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func BenchmarkNormalize(b *testing.B) {
	s := "２.３　Ｓｙｓｔｅｍ  Architecture\tand   design ﬁnesse"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Normalize(s)
	}
}
