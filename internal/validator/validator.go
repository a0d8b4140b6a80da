// Package validator performs structural checks on a generated VQA dataset
// artifact.
package validator

import (
	"fmt"
	"strings"

	"github.com/idlab-discover/vqagen-cli/internal/dataset"
	"github.com/idlab-discover/vqagen-cli/internal/qa"
)

// Result holds the outcome of validating one artifact.
type Result struct {
	ArtifactPath string
	Valid        bool
	EntryCount   int
	Errors       []string
	Warnings     []string
}

// ValidateDataset checks the supervision contract of every entry: exactly
// three QA pairs, exactly five answers per pair, a video path consistent
// with the entry key, and no empty question or answer text. Violations are
// errors; suspicious-but-legal shapes are warnings.
func ValidateDataset(path string, ds *dataset.Dataset) Result {
	res := Result{
		ArtifactPath: path,
		EntryCount:   ds.Len(),
	}

	ds.Each(func(key string, e dataset.Entry) {
		if e.VideoPath != key+".mp4" {
			res.Errors = append(res.Errors,
				fmt.Sprintf("%s: video_path %q does not match key", key, e.VideoPath))
		}

		if len(e.QAPairs) != qa.PairsPerEntry {
			res.Errors = append(res.Errors,
				fmt.Sprintf("%s: expected %d qa_pairs, got %d", key, qa.PairsPerEntry, len(e.QAPairs)))
		}

		for i, pair := range e.QAPairs {
			if strings.TrimSpace(pair.Question) == "" {
				res.Errors = append(res.Errors,
					fmt.Sprintf("%s: qa_pairs[%d] has an empty question", key, i))
			}
			if len(pair.Answers) != qa.AnswersPerPair {
				res.Errors = append(res.Errors,
					fmt.Sprintf("%s: qa_pairs[%d] has %d answers, expected %d", key, i, len(pair.Answers), qa.AnswersPerPair))
			}
			for j, answer := range pair.Answers {
				if strings.TrimSpace(answer) == "" {
					res.Errors = append(res.Errors,
						fmt.Sprintf("%s: qa_pairs[%d].answers[%d] is empty", key, i, j))
				}
			}
		}

		if e.DetectedObjects == nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s: detected_objects is missing (expected an array, possibly empty)", key))
		}
	})

	if res.EntryCount == 0 {
		res.Warnings = append(res.Warnings, "artifact contains no entries")
	}

	res.Valid = len(res.Errors) == 0
	logf(path, "validated %d entr(y/ies): %d error(s), %d warning(s)",
		res.EntryCount, len(res.Errors), len(res.Warnings))
	return res
}
