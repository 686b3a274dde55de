package batch

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/tsawler/contour/model"
)

// json preserves non-ASCII text literally and does not escape HTML;
// outlines are multilingual and the output is not destined for browsers.
var json = sonic.ConfigDefault

// MarshalOutline renders an outline as indented JSON with a trailing
// newline. A nil entry slice is replaced with an empty one so the
// outline field is always an array.
func MarshalOutline(o model.Outline) ([]byte, error) {
	if o.Entries == nil {
		o.Entries = []model.Entry{}
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal outline: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteOutline writes an outline as indented JSON to path.
func WriteOutline(path string, o model.Outline) error {
	data, err := MarshalOutline(o)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}
	return nil
}
