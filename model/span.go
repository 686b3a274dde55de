package model

import "strings"

// TextSpan is a contiguous run of text sharing one formatting style. It is
// the atomic unit of analysis, produced by a PDF text extractor and treated
// as immutable by the pipeline.
type TextSpan struct {
	// Text is the span content, already normalized by the producer.
	Text string

	// FontSize is the rendered font size in points.
	FontSize float64

	// FontName is the font used for the span, when the extractor can
	// resolve it (e.g. "Helvetica-Bold"). May be a bare resource name.
	FontName string

	// Bold indicates bold rendering, derived from font flags or from
	// font-name heuristics.
	Bold bool

	// Page is the 1-based page number the span appears on.
	Page int

	// BBox is the span's position on the page (top-left origin).
	BBox BBox
}

// IsEmpty reports whether the span contains no visible text.
func (s TextSpan) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == ""
}
