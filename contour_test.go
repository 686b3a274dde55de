package contour

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func sampleSpans() []model.TextSpan {
	mk := func(text string, size float64, bold bool, page int, y float64) model.TextSpan {
		return model.TextSpan{
			Text:     text,
			FontSize: size,
			Bold:     bold,
			Page:     page,
			BBox:     model.NewBBox(72, y, 400, size),
		}
	}
	return []model.TextSpan{
		mk("1. Introduction", 18, true, 1, 100),
		mk("1.1 Background", 14, false, 1, 160),
		mk("Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod.", 11, false, 1, 220),
		mk("2. Methods", 18, true, 2, 100),
	}
}

func TestFromSpansOutline(t *testing.T) {
	o, err := FromSpans(sampleSpans()).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}

	if len(o.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %+v", o.Entries)
	}
	if o.Entries[0].Level != model.Level1 || o.Entries[0].Text != "1. Introduction" {
		t.Errorf("first entry = %+v", o.Entries[0])
	}
	if o.Entries[1].Level != model.Level2 {
		t.Errorf("second entry level = %v, want H2", o.Entries[1].Level)
	}
}

func TestMaxEntriesImmutable(t *testing.T) {
	base := FromSpans(sampleSpans())
	capped := base.MaxEntries(1)

	if capped == base {
		t.Fatal("MaxEntries must return a new Extractor")
	}
	if base.options.maxEntries != 0 {
		t.Errorf("original extractor mutated: maxEntries = %d", base.options.maxEntries)
	}

	o, err := capped.Outline()
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Entries) != 1 {
		t.Errorf("capped entries = %d, want 1", len(o.Entries))
	}

	full, err := base.Outline()
	if err != nil {
		t.Fatal(err)
	}
	if len(full.Entries) != 3 {
		t.Errorf("uncapped entries = %d, want 3", len(full.Entries))
	}
}

func TestOpenMissingFile(t *testing.T) {
	o, err := Open("does-not-exist.pdf").Outline()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if o.Entries == nil {
		t.Error("outline entries must be non-nil even on error")
	}
}

func TestNoSourceSpecified(t *testing.T) {
	e := &Extractor{options: defaultOptions()}
	if _, err := e.Spans(); err == nil {
		t.Error("expected error when no source is configured")
	}
}

func TestTitle(t *testing.T) {
	spans := append([]model.TextSpan{
		{
			Text:     "Understanding Distributed Systems",
			FontSize: 28,
			Bold:     true,
			Page:     1,
			BBox:     model.NewBBox(72, 80, 400, 28),
		},
	}, sampleSpans()...)

	title, err := FromSpans(spans).Title()
	if err != nil {
		t.Fatal(err)
	}
	if title != "Understanding Distributed Systems" {
		t.Errorf("Title = %q", title)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(Open("does-not-exist.pdf").Outline())
}

func TestMustPassesThrough(t *testing.T) {
	o := Must(FromSpans(sampleSpans()).Outline())
	if len(o.Entries) == 0 {
		t.Error("expected entries from Must")
	}
}
