package metadata

import (
	"encoding/json"
	"testing"
)

func decodeRecord(t *testing.T, src string) Record {
	t.Helper()
	var r Record
	if err := json.Unmarshal([]byte(src), &r); err != nil {
		t.Fatalf("Unmarshal(%s): %v", src, err)
	}
	return r
}

func TestIdentScalarForms(t *testing.T) {
	tcs := []struct {
		src     string
		present bool
		value   string
	}{
		{`"case01"`, true, "case01"},
		{`42`, true, "42"},
		{`0`, true, "0"},
		{`""`, true, ""},
		{`3.5`, true, "3.5"},
		{`true`, true, "true"},
		{`null`, false, ""},
	}
	for _, tc := range tcs {
		var id Ident
		if err := json.Unmarshal([]byte(tc.src), &id); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tc.src, err)
		}
		if id.Present() != tc.present {
			t.Fatalf("Present for %s = %v, want %v", tc.src, id.Present(), tc.present)
		}
		if id.String() != tc.value {
			t.Fatalf("String for %s = %q, want %q", tc.src, id.String(), tc.value)
		}
	}
}

func TestIdentAbsentKey(t *testing.T) {
	r := decodeRecord(t, `{"index": 1}`)
	if r.CaseID.Present() {
		t.Fatalf("expected absent case_id to be not present")
	}
	if r.Eligible() {
		t.Fatalf("record without case_id must not be eligible")
	}
}

func TestEligibleAcceptsZeroAndEmptyIdentifiers(t *testing.T) {
	// 0 and "" are valid identifiers; only absence and null disqualify.
	r := decodeRecord(t, `{"case_id": "", "index": 0}`)
	if !r.Eligible() {
		t.Fatalf("expected record with \"\" and 0 identifiers to be eligible")
	}

	r = decodeRecord(t, `{"case_id": "case01", "index": null}`)
	if r.Eligible() {
		t.Fatalf("expected null index to disqualify the record")
	}
}

func TestRecordDecodesFields(t *testing.T) {
	r := decodeRecord(t, `{
		"case_id": "case01",
		"index": 2,
		"tools": ["needle_driver", "cadiere_forceps"],
		"groundtruth_taskname": "suturing"
	}`)

	if r.CaseID.String() != "case01" || r.Index.String() != "2" {
		t.Fatalf("identity = (%q, %q), want (case01, 2)", r.CaseID, r.Index)
	}
	if len(r.Tools) != 2 || r.Tools[0] != "needle_driver" {
		t.Fatalf("tools = %v", r.Tools)
	}
	if r.TaskName != "suturing" {
		t.Fatalf("task name = %q", r.TaskName)
	}
}

func TestRecordToleratesWrongShapes(t *testing.T) {
	r := decodeRecord(t, `{
		"case_id": "c",
		"index": 1,
		"tools": "not-an-array",
		"groundtruth_taskname": 17
	}`)
	if r.Tools != nil {
		t.Fatalf("wrong-shaped tools should decode to nil, got %v", r.Tools)
	}
	if r.TaskName != "" {
		t.Fatalf("wrong-shaped task name should decode to empty, got %q", r.TaskName)
	}
	if !r.Eligible() {
		t.Fatalf("wrong-shaped optional fields must not affect eligibility")
	}
}

func TestRecordKeepsStringToolsFromMixedArray(t *testing.T) {
	r := decodeRecord(t, `{"case_id": "c", "index": 1, "tools": ["grasper", 7, null, "scissors"]}`)
	if len(r.Tools) != 2 || r.Tools[0] != "grasper" || r.Tools[1] != "scissors" {
		t.Fatalf("tools = %v, want [grasper scissors]", r.Tools)
	}
}

func TestIdentMarshalRoundTrip(t *testing.T) {
	var id Ident
	if err := json.Unmarshal([]byte(`7`), &id); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	out, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"7"` {
		t.Fatalf("marshal = %s, want \"7\"", out)
	}

	out, err = json.Marshal(Ident{})
	if err != nil {
		t.Fatalf("Marshal zero: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("zero marshal = %s, want null", out)
	}
}
