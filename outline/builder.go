package outline

import (
	"sort"
	"strings"

	"github.com/tsawler/contour/heading"
	"github.com/tsawler/contour/lang"
	"github.com/tsawler/contour/model"
)

const (
	// DefaultMaxEntries caps the outline size. Documents with more
	// detected headings keep the first entries in reading order; a
	// thousand-entry outline is noise, not structure.
	DefaultMaxEntries = 100

	// Script detection samples the first spans of the first pages; the
	// opening of a document is representative of its dominant script.
	sampleSpans = 50
	samplePages = 3
)

// Config holds the tunable knobs of outline assembly. The zero value is
// usable; NewBuilder fills in defaults.
type Config struct {
	// MaxEntries caps the number of outline entries. Zero or negative
	// means DefaultMaxEntries.
	MaxEntries int
}

// Builder turns text spans into outlines. A Builder is immutable after
// construction and safe for concurrent use; all per-document state lives
// on the stack of Build.
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder with the given configuration, applying
// defaults for unset fields.
func NewBuilder(cfg Config) *Builder {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	return &Builder{cfg: cfg}
}

// Build assembles an outline from spans in document order. It never
// returns a nil entry slice and never panics: any internal failure yields
// the empty outline instead, so one malformed document cannot take down a
// batch.
//
// The title is selected before headings are filtered against it, so a
// prominent first-page title is reported as the title rather than as an
// H1 entry; the same text never appears in both places.
func (b *Builder) Build(spans []model.TextSpan) (out model.Outline) {
	defer func() {
		if r := recover(); r != nil {
			out = model.EmptyOutline()
		}
	}()

	if len(spans) == 0 {
		return model.EmptyOutline()
	}

	profile := lang.ProfileFor(lang.DetectScript(scriptSample(spans)))
	stats := heading.Analyze(spans)

	scorer := heading.NewScorer(profile, stats)
	cands := heading.AssignLevels(scorer.Score(spans))

	title := heading.ExtractTitle(spans, profile, stats, nil)

	// Candidates already follow span order; the stable sort only matters
	// when the caller supplied spans out of page order.
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Span.Page != cands[j].Span.Page {
			return cands[i].Span.Page < cands[j].Span.Page
		}
		return cands[i].Index < cands[j].Index
	})

	entries := make([]model.Entry, 0, len(cands))
	for _, c := range cands {
		if title != "" && c.Text == title {
			continue
		}
		entries = append(entries, model.Entry{
			Level: c.Level,
			Text:  c.Text,
			Page:  c.Span.Page,
		})
		if len(entries) == b.cfg.MaxEntries {
			break
		}
	}

	return model.Outline{Title: title, Entries: entries}
}

// scriptSample concatenates the text of the first spans on the first
// pages for script detection.
func scriptSample(spans []model.TextSpan) string {
	var sb strings.Builder
	n := 0
	for _, s := range spans {
		if s.Page > samplePages {
			continue
		}
		sb.WriteString(s.Text)
		sb.WriteByte(' ')
		if n++; n == sampleSpans {
			break
		}
	}
	return sb.String()
}
