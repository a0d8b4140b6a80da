// Package io reads and writes the VQA dataset artifact.
package io

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idlab-discover/vqagen-cli/internal/dataset"
)

// DefaultArtifactName is the artifact written next to the input shards when
// no output path is given.
const DefaultArtifactName = "vqa_dataset.json"

// WriteDataset writes the dataset to path as a human-readable JSON object,
// two-space indented, with top-level keys in insertion order. HTML escaping
// is disabled so question and answer text stays literal. Parent directories
// are created as needed.
func WriteDataset(path string, ds *dataset.Dataset) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return nil
}

// ReadDataset reads a previously written artifact, preserving key order.
func ReadDataset(path string) (*dataset.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds dataset.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return &ds, nil
}
