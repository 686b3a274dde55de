// Package lang provides script-family detection and per-script language
// profiles for heading classification.
//
// A document is classified once into a dominant [Script] by counting
// characters that fall into known Unicode ranges. The matching [Profile]
// then supplies everything script-specific: numbered-heading and
// chapter/section keyword patterns, stopwords that disqualify short spans,
// and whether the script distinguishes letter case (all-caps and title-case
// signals are disabled for scripts that do not).
//
// Profiles are built once at package initialization and are never mutated,
// so they are safe to share across concurrently processed documents.
package lang
