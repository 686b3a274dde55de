package model

import "fmt"

// HeadingLevel represents the hierarchical level of an outline heading.
// Only three levels are distinguished; anything deeper is clamped to H3.
type HeadingLevel int

const (
	LevelUnknown HeadingLevel = iota
	Level1                    // H1 - chapter / top-level section
	Level2                    // H2 - major section
	Level3                    // H3 - subsection
)

// String returns the conventional label for the level ("H1", "H2", "H3").
func (l HeadingLevel) String() string {
	switch l {
	case Level1:
		return "H1"
	case Level2:
		return "H2"
	case Level3:
		return "H3"
	default:
		return ""
	}
}

// MarshalJSON encodes the level as its string label.
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes a string label back into a level.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"H1"`:
		*l = Level1
	case `"H2"`:
		*l = Level2
	case `"H3"`:
		*l = Level3
	case `""`, `null`:
		*l = LevelUnknown
	default:
		return fmt.Errorf("invalid heading level %s", data)
	}
	return nil
}

// Entry is a single outline entry.
type Entry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Outline is the extracted document outline: an optional title plus the
// heading entries in document reading order (page ascending, original span
// order within a page). Entries is never nil so the outline always
// serializes to the stable shape {"title": "...", "outline": [...]}.
type Outline struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"outline"`
}

// EmptyOutline returns the minimal valid outline: no title, no entries.
// It is the guaranteed fallback result for unreadable or empty documents.
func EmptyOutline() Outline {
	return Outline{Title: "", Entries: []Entry{}}
}

// EntryCount returns the number of outline entries.
func (o Outline) EntryCount() int {
	return len(o.Entries)
}

// EntriesAtLevel returns the entries with the given level, in order.
func (o Outline) EntriesAtLevel(level HeadingLevel) []Entry {
	var result []Entry
	for _, e := range o.Entries {
		if e.Level == level {
			result = append(result, e)
		}
	}
	return result
}
