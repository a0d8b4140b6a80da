// Package metadata defines the per-segment object-detection record shape
// and its tolerant JSON decoding rules.
package metadata

import (
	"encoding/json"
	"strings"
)

// Ident is a flexible scalar identifier field. Source shards encode case
// identifiers and segment indices as strings or numbers interchangeably, and
// presence matters independently of the value: an explicit 0 or "" is a valid
// identifier, while an absent key or a JSON null is not.
type Ident struct {
	value   string
	present bool
}

// Present reports whether the field was present and non-null in the source.
func (id Ident) Present() bool { return id.present }

// String returns the identifier rendered for use in keys and file names.
func (id Ident) String() string { return id.value }

// UnmarshalJSON accepts any scalar token. Strings are unquoted; numbers and
// booleans keep their literal JSON text. null is treated as absent.
func (id *Ident) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = Ident{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = Ident{value: s, present: true}
		return nil
	}
	*id = Ident{value: strings.TrimSpace(string(b)), present: true}
	return nil
}

// MarshalJSON round-trips the identifier as a string; absent encodes as null.
func (id Ident) MarshalJSON() ([]byte, error) {
	if !id.present {
		return []byte("null"), nil
	}
	return json.Marshal(id.value)
}

// Record is one labeled video segment as found in a metadata shard.
// All fields are optional in the source; decoding never fails on a
// wrong-shaped sub-field, it degrades to the zero value instead.
type Record struct {
	CaseID   Ident
	Index    Ident
	Tools    []string
	TaskName string
}

// Eligible reports whether the record carries the identity fields required
// to produce an output entry.
func (r Record) Eligible() bool {
	return r.CaseID.Present() && r.Index.Present()
}

// UnmarshalJSON decodes a record leniently:
//   - case_id / index: any scalar, null counts as absent
//   - tools: array of strings; non-string elements are dropped, any other
//     shape becomes an empty list
//   - groundtruth_taskname: string, any other shape becomes ""
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw struct {
		CaseID   Ident           `json:"case_id"`
		Index    Ident           `json:"index"`
		Tools    json.RawMessage `json:"tools"`
		TaskName json.RawMessage `json:"groundtruth_taskname"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.CaseID = raw.CaseID
	r.Index = raw.Index
	r.Tools = decodeTools(raw.Tools)
	r.TaskName = decodeString(raw.TaskName)
	return nil
}

func decodeTools(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var tools []string
	if err := json.Unmarshal(raw, &tools); err == nil {
		return tools
	}
	// Mixed-type array: keep the string elements, drop the rest.
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	for _, e := range elems {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			tools = append(tools, s)
		}
	}
	return tools
}

func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
