package contour

import (
	"fmt"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/outline"
	"github.com/tsawler/contour/reader"
)

// Extractor provides a fluent interface for extracting outlines from
// PDFs. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename  string
	spans     []model.TextSpan
	haveSpans bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		spans:     e.spans,
		haveSpans: e.haveSpans,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// MaxEntries caps the number of outline entries returned. Values below
// one restore the default cap.
func (e *Extractor) MaxEntries(n int) *Extractor {
	c := e.clone()
	if n < 1 {
		n = 0
	}
	c.options.maxEntries = n
	return c
}

// Spans returns the document's text spans, extracting them from the
// file on first use.
func (e *Extractor) Spans() ([]model.TextSpan, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.haveSpans {
		return e.spans, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	return reader.ExtractSpans(e.filename)
}

// Outline is a terminal operation: it extracts spans if needed and
// assembles the document outline. On error the returned outline is the
// empty outline, never a zero value with nil entries.
func (e *Extractor) Outline() (model.Outline, error) {
	spans, err := e.Spans()
	if err != nil {
		return model.EmptyOutline(), err
	}

	b := outline.NewBuilder(outline.Config{MaxEntries: e.options.maxEntries})
	return b.Build(spans), nil
}

// Title is a terminal operation returning just the document title; an
// empty string means no title was confidently detected.
func (e *Extractor) Title() (string, error) {
	o, err := e.Outline()
	return o.Title, err
}
