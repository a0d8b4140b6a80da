package validator

import (
	"strings"
	"testing"

	"github.com/idlab-discover/vqagen-cli/internal/dataset"
	"github.com/idlab-discover/vqagen-cli/internal/qa"
)

func validEntry(key string) dataset.Entry {
	return dataset.Entry{
		VideoPath:       key + ".mp4",
		DetectedObjects: []string{"needle_driver"},
		QAPairs:         qa.BuildPairs([]string{"needle_driver"}, "suturing"),
	}
}

func TestValidateDatasetPasses(t *testing.T) {
	ds := dataset.New()
	ds.Set("c1_id0", validEntry("c1_id0"))
	ds.Set("c1_id1", validEntry("c1_id1"))

	res := ValidateDataset("vqa_dataset.json", ds)
	if !res.Valid {
		t.Fatalf("expected valid, errors = %v", res.Errors)
	}
	if res.EntryCount != 2 {
		t.Fatalf("entry count = %d, want 2", res.EntryCount)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}

func TestValidateDatasetVideoPathMismatch(t *testing.T) {
	ds := dataset.New()
	e := validEntry("c1_id0")
	e.VideoPath = "other.mp4"
	ds.Set("c1_id0", e)

	res := ValidateDataset("x.json", ds)
	if res.Valid {
		t.Fatalf("expected invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "video_path") {
		t.Fatalf("errors = %v", res.Errors)
	}
}

func TestValidateDatasetWrongPairAndAnswerCounts(t *testing.T) {
	ds := dataset.New()
	e := validEntry("c1_id0")
	e.QAPairs = e.QAPairs[:2]
	e.QAPairs[1].Answers = e.QAPairs[1].Answers[:3]
	ds.Set("c1_id0", e)

	res := ValidateDataset("x.json", ds)
	if res.Valid {
		t.Fatalf("expected invalid")
	}

	var pairCount, answerCount bool
	for _, msg := range res.Errors {
		if strings.Contains(msg, "expected 3 qa_pairs") {
			pairCount = true
		}
		if strings.Contains(msg, "has 3 answers, expected 5") {
			answerCount = true
		}
	}
	if !pairCount || !answerCount {
		t.Fatalf("errors = %v, want pair-count and answer-count violations", res.Errors)
	}
}

func TestValidateDatasetEmptyText(t *testing.T) {
	ds := dataset.New()
	e := validEntry("c1_id0")
	e.QAPairs[0].Question = "   "
	e.QAPairs[2].Answers[4] = ""
	ds.Set("c1_id0", e)

	res := ValidateDataset("x.json", ds)
	if res.Valid {
		t.Fatalf("expected invalid")
	}
	joined := strings.Join(res.Errors, "\n")
	if !strings.Contains(joined, "empty question") {
		t.Fatalf("errors = %v, want empty-question violation", res.Errors)
	}
	if !strings.Contains(joined, "qa_pairs[2].answers[4] is empty") {
		t.Fatalf("errors = %v, want empty-answer violation", res.Errors)
	}
}

func TestValidateDatasetNilObjectsIsWarningOnly(t *testing.T) {
	ds := dataset.New()
	e := validEntry("c1_id0")
	e.DetectedObjects = nil
	ds.Set("c1_id0", e)

	res := ValidateDataset("x.json", ds)
	if !res.Valid {
		t.Fatalf("nil detected_objects must not fail validation: %v", res.Errors)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "detected_objects") {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}

func TestValidateDatasetEmptyArtifactWarns(t *testing.T) {
	res := ValidateDataset("x.json", dataset.New())
	if !res.Valid {
		t.Fatalf("empty artifact is legal, errors = %v", res.Errors)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "no entries") {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}
