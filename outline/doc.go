// Package outline assembles document outlines from extracted text spans.
// It orchestrates the full pipeline: script detection, font analysis,
// heading scoring, level assignment, and title selection, producing a
// model.Outline in reading order.
package outline
