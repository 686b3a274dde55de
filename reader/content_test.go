package reader

import (
	"testing"
)

func parseStream(t *testing.T, stream string, fonts map[string]fontInfo) []spanView {
	t.Helper()
	p := newContentParser(1, 792, fonts)
	var out []spanView
	for _, s := range p.parse([]byte(stream)) {
		out = append(out, spanView{
			text: s.Text,
			size: s.FontSize,
			bold: s.Bold,
			x:    s.BBox.X,
			y:    s.BBox.Y,
		})
	}
	return out
}

type spanView struct {
	text string
	size float64
	bold bool
	x, y float64
}

func TestParseSimpleTextObject(t *testing.T) {
	stream := `BT
/F1 18 Tf
72 700 Td
(Hello World) Tj
ET`

	spans := parseStream(t, stream, map[string]fontInfo{
		"F1": {name: "Helvetica-Bold", bold: true},
	})

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d: %+v", len(spans), spans)
	}
	s := spans[0]
	if s.text != "Hello World" {
		t.Errorf("text = %q, want %q", s.text, "Hello World")
	}
	if s.size != 18 {
		t.Errorf("size = %v, want 18", s.size)
	}
	if !s.bold {
		t.Error("span should inherit bold from the font")
	}
	if s.x != 72 {
		t.Errorf("x = %v, want 72", s.x)
	}
	// 792 - 700 - 18: baseline converted to a top-left origin.
	if s.y != 74 {
		t.Errorf("y = %v, want 74", s.y)
	}
}

func TestParsePositioningSplitsSpans(t *testing.T) {
	stream := `BT
/F1 12 Tf
72 700 Td
(First line) Tj
0 -14 Td
(Second line) Tj
T*
(Third line) Tj
ET`

	spans := parseStream(t, stream, nil)

	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d: %+v", len(spans), spans)
	}
	want := []string{"First line", "Second line", "Third line"}
	for i, w := range want {
		if spans[i].text != w {
			t.Errorf("span %d text = %q, want %q", i, spans[i].text, w)
		}
	}
	if !(spans[0].y < spans[1].y) {
		t.Errorf("second line should sit below the first: %v vs %v", spans[0].y, spans[1].y)
	}
}

func TestParseTJArrayWithKerning(t *testing.T) {
	// Small adjustments are kerning and add nothing; a large negative
	// adjustment is a word space.
	stream := `BT
/F1 12 Tf
72 700 Td
[(Hel) -20 (lo) -350 (World)] TJ
ET`

	spans := parseStream(t, stream, nil)

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].text != "Hello World" {
		t.Errorf("text = %q, want %q", spans[0].text, "Hello World")
	}
}

func TestParseTmSetsPositionAndScale(t *testing.T) {
	stream := `BT
/F1 1 Tf
24 0 0 24 100 650 Tm
(Scaled Title) Tj
ET`

	spans := parseStream(t, stream, nil)

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].size != 24 {
		t.Errorf("size = %v, want 24 (unit font scaled by the text matrix)", spans[0].size)
	}
	if spans[0].x != 100 {
		t.Errorf("x = %v, want 100", spans[0].x)
	}
}

func TestParseEscapesAndNesting(t *testing.T) {
	stream := `BT
/F1 12 Tf
72 700 Td
(Paren \(inside\) and (nested) plus \101\102) Tj
ET`

	spans := parseStream(t, stream, nil)

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	want := "Paren (inside) and (nested) plus AB"
	if spans[0].text != want {
		t.Errorf("text = %q, want %q", spans[0].text, want)
	}
}

func TestParseHexString(t *testing.T) {
	stream := `BT
/F1 12 Tf
72 700 Td
<48656C6C6F> Tj
ET`

	spans := parseStream(t, stream, nil)

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].text != "Hello" {
		t.Errorf("text = %q, want %q", spans[0].text, "Hello")
	}
}

func TestParseQuoteOperator(t *testing.T) {
	stream := `BT
/F1 12 Tf
14 TL
72 700 Td
(line one) Tj
(line two) '
ET`

	spans := parseStream(t, stream, nil)

	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %+v", len(spans), spans)
	}
	if spans[1].text != "line two" {
		t.Errorf("second span = %q, want %q", spans[1].text, "line two")
	}
	if !(spans[1].y > spans[0].y) {
		t.Errorf("' should advance to the next line: %v vs %v", spans[1].y, spans[0].y)
	}
}

func TestParseIgnoresNonTextOperators(t *testing.T) {
	stream := `q
1 0 0 1 0 0 cm
0.5 g
BT
/F1 12 Tf
72 700 Td
(visible text) Tj
ET
Q
72 100 200 50 re f`

	spans := parseStream(t, stream, nil)

	if len(spans) != 1 || spans[0].text != "visible text" {
		t.Errorf("expected only the text span, got %+v", spans)
	}
}

func TestParseEmptyStream(t *testing.T) {
	if spans := parseStream(t, "", nil); len(spans) != 0 {
		t.Errorf("expected no spans from empty stream, got %+v", spans)
	}
}

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"Helvetica-Bold", true},
		{"ABCDEF+NotoSans-Black", true},
		{"TimesNewRoman-SemiBold", true},
		{"Helvetica", false},
		{"CMR10", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isBoldFont(tt.name); got != tt.expected {
			t.Errorf("isBoldFont(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
