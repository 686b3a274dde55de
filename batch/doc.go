// Package batch processes directories of PDF files into outline JSON
// files. Every input produces exactly one output: files that cannot be
// parsed get an empty outline rather than a missing or malformed result,
// so downstream consumers never special-case failures.
package batch
