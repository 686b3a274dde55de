// Package contour provides a fluent API for extracting document outlines
// (title plus H1/H2/H3 headings with page numbers) from PDF files.
//
// Basic usage:
//
//	outline, err := contour.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// With options:
//
//	outline, err := contour.Open("report.pdf").
//	    MaxEntries(50).
//	    Outline()
//
// Extraction is heuristic: headings are detected from font sizes,
// boldness, numbering schemes, and localized section keywords, with
// script-aware rules for Latin, Cyrillic, Arabic, and CJK documents.
// For advanced use cases, the lower-level reader and outline packages
// are also available.
package contour

import (
	"github.com/tsawler/contour/model"
)

// Open prepares a PDF file for outline extraction and returns an
// Extractor for fluent configuration. The file is opened lazily by the
// terminal operation.
//
// Example:
//
//	outline, err := contour.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSpans creates an Extractor over already-extracted text spans.
// This is useful when spans come from another source or when the same
// document is analyzed repeatedly with different options.
//
// Example:
//
//	spans, err := reader.ExtractSpans("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	outline, _ := contour.FromSpans(spans).Outline()
func FromSpans(spans []model.TextSpan) *Extractor {
	return &Extractor{
		spans:     spans,
		haveSpans: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := contour.Must(contour.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
