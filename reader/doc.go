// Package reader extracts positioned text spans from PDF files. It reads
// page content streams via pdfcpu and walks the text operators, tracking
// font, size, and position state so each emitted span carries the
// typographic signals the outline pipeline scores on.
package reader
