package validator

import (
	"bytes"
	"strings"
	"testing"

	yaml "go.yaml.in/yaml/v3"
)

func TestWriteYAMLRoundTrip(t *testing.T) {
	res := Result{
		ArtifactPath: "vqa_dataset.json",
		Valid:        false,
		EntryCount:   4,
		Errors:       []string{"c1_id0: video_path \"x.mp4\" does not match key"},
		Warnings:     []string{"artifact contains no entries"},
	}

	var buf bytes.Buffer
	if err := WriteYAML(&buf, res); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	var back yamlReport
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Artifact != res.ArtifactPath || back.Valid || back.Entries != 4 {
		t.Fatalf("round-trip report = %+v", back)
	}
	if len(back.Errors) != 1 || len(back.Warnings) != 1 {
		t.Fatalf("round-trip lists = %+v", back)
	}
}

func TestWriteYAMLOmitsEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, Result{ArtifactPath: "a.json", Valid: true, EntryCount: 1}); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "errors:") || strings.Contains(out, "warnings:") {
		t.Fatalf("empty lists should be omitted, got:\n%s", out)
	}
}

func TestPrintReportMentionsCounts(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, Result{
		ArtifactPath: "vqa_dataset.json",
		Valid:        false,
		EntryCount:   2,
		Errors:       []string{"boom"},
		Warnings:     []string{"meh"},
	})

	out := buf.String()
	for _, want := range []string{"vqa_dataset.json", "errors (1):", "warnings (1):", "boom", "meh"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report output missing %q:\n%s", want, out)
		}
	}
}
