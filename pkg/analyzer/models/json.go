package models

import "encoding/json"

// MarshalJSON encodes the value as its natural JSON type: null, boolean,
// number or string. Date/times use the canonical textual layout.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	}
	return json.Marshal(v.Canonical())
}

// MarshalJSON encodes the table as its column names and row values.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Columns []string  `json:"columns"`
		Rows    [][]Value `json:"rows"`
	}{Columns: t.columns, Rows: t.rows})
}
