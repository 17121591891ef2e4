// Package iojson provides helpers for consistent JSON output on CLI
// command streams.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteWith writes obj as indented JSON to w.
func WriteWith(w io.Writer, obj any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}

// WriteLine writes obj as a single compact JSON line to w. Useful for
// JSON-lines output where each record must stay on one line.
func WriteLine(w io.Writer, obj any) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
