// Package databom describes a generated VQA dataset artifact as a CycloneDX
// BOM with a single data component, so the dataset can be referenced from
// model and pipeline BOMs downstream.
package databom

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"

	"github.com/idlab-discover/vqagen-cli/internal/dataset"
	"github.com/idlab-discover/vqagen-cli/internal/qa"
)

const (
	toolVendor = "idlab-discover"
	toolName   = "vqagen-cli"
)

// Build constructs a BOM for the artifact at artifactPath. The dataset is the
// decoded artifact content; its entry count and supervision shape are
// recorded as component properties alongside a SHA-256 of the file.
func Build(artifactPath string, ds *dataset.Dataset, toolVersion string) (*cdx.BOM, error) {
	hash, err := fileSHA256(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("hash artifact: %w", err)
	}

	if toolVersion == "" {
		toolVersion = "dev"
	}

	bom := cdx.NewBOM()
	bom.SerialNumber = "urn:uuid:" + uuid.New().String()
	bom.Metadata = &cdx.Metadata{
		Timestamp: time.Now().Format(time.RFC3339),
		Tools: &cdx.ToolsChoice{
			Components: &[]cdx.Component{
				{
					Type:    cdx.ComponentTypeApplication,
					Name:    toolName,
					Version: toolVersion,
					Manufacturer: &cdx.OrganizationalEntity{
						Name: toolVendor,
					},
				},
			},
		},
	}

	component := cdx.Component{
		BOMRef: "urn:uuid:" + uuid.New().String(),
		Type:   cdx.ComponentTypeData,
		Name:   filepath.Base(artifactPath),
		Hashes: &[]cdx.Hash{
			{Algorithm: cdx.HashAlgoSHA256, Value: hash},
		},
		Properties: &[]cdx.Property{
			{Name: "vqagen:entries", Value: strconv.Itoa(ds.Len())},
			{Name: "vqagen:qa-pairs-per-entry", Value: strconv.Itoa(qa.PairsPerEntry)},
			{Name: "vqagen:answers-per-pair", Value: strconv.Itoa(qa.AnswersPerPair)},
		},
	}
	bom.Components = &[]cdx.Component{component}

	return bom, nil
}

// WriteBOM writes the BOM to outputPath as pretty-printed CycloneDX JSON,
// creating directories as needed.
func WriteBOM(bom *cdx.BOM, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := cdx.NewBOMEncoder(f, cdx.BOMFileFormatJSON)
	encoder.SetPretty(true)
	return encoder.Encode(bom)
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
