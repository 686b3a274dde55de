// Package model provides the data types shared by every stage of outline
// extraction.
//
// The pipeline communicates exclusively through these types:
//
//   - [TextSpan] - a run of text with uniform formatting, the atomic input unit
//   - [BBox] - span position on the page
//   - [HeadingLevel] - H1, H2, or H3
//   - [Outline] - the final result: a title plus ordered heading entries
//
// TextSpans are produced once by the reader (or supplied directly by the
// caller) and are never mutated by the pipeline. An [Outline] is built once
// per document and is immutable after it is returned.
package model
