// Package output renders comparison results: JSON and CSV exports and a
// styled text report for the terminal.
package output

import "encoding/json"

// ToJSON serializes v, optionally pretty-printed.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
