package databom

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/vqagen-cli/internal/dataset"
	"github.com/idlab-discover/vqagen-cli/internal/qa"
)

func writeArtifact(t *testing.T) (string, *dataset.Dataset) {
	t.Helper()
	ds := dataset.New()
	ds.Set("c1_id0", dataset.Entry{
		VideoPath:       "c1_id0.mp4",
		DetectedObjects: []string{"needle_driver"},
		QAPairs:         qa.BuildPairs([]string{"needle_driver"}, "suturing"),
	})

	path := filepath.Join(t.TempDir(), "vqa_dataset.json")
	if err := os.WriteFile(path, []byte(`{"c1_id0":{}}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path, ds
}

func TestBuildDescribesArtifact(t *testing.T) {
	path, ds := writeArtifact(t)

	bom, err := Build(path, ds, "1.2.3")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if !strings.HasPrefix(bom.SerialNumber, "urn:uuid:") {
		t.Fatalf("serial number = %q", bom.SerialNumber)
	}
	if bom.Metadata == nil || bom.Metadata.Tools == nil || bom.Metadata.Tools.Components == nil {
		t.Fatalf("missing tool metadata")
	}
	tool := (*bom.Metadata.Tools.Components)[0]
	if tool.Name != "vqagen-cli" || tool.Version != "1.2.3" {
		t.Fatalf("tool = %+v", tool)
	}

	if bom.Components == nil || len(*bom.Components) != 1 {
		t.Fatalf("expected exactly one component")
	}
	comp := (*bom.Components)[0]
	if comp.Type != cdx.ComponentTypeData {
		t.Fatalf("component type = %v, want data", comp.Type)
	}
	if comp.Name != "vqa_dataset.json" {
		t.Fatalf("component name = %q", comp.Name)
	}

	sum := sha256.Sum256([]byte(`{"c1_id0":{}}`))
	want := hex.EncodeToString(sum[:])
	if comp.Hashes == nil || len(*comp.Hashes) != 1 || (*comp.Hashes)[0].Value != want {
		t.Fatalf("hashes = %v, want SHA-256 %s", comp.Hashes, want)
	}

	props := map[string]string{}
	for _, p := range *comp.Properties {
		props[p.Name] = p.Value
	}
	if props["vqagen:entries"] != "1" {
		t.Fatalf("properties = %v", props)
	}
	if props["vqagen:qa-pairs-per-entry"] != "3" || props["vqagen:answers-per-pair"] != "5" {
		t.Fatalf("properties = %v", props)
	}
}

func TestBuildDefaultsVersion(t *testing.T) {
	path, ds := writeArtifact(t)
	bom, err := Build(path, ds, "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if (*bom.Metadata.Tools.Components)[0].Version != "dev" {
		t.Fatalf("expected dev version fallback")
	}
}

func TestBuildMissingArtifact(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "missing.json"), dataset.New(), "")
	if err == nil {
		t.Fatalf("expected error for missing artifact")
	}
}

func TestWriteBOMRoundTrip(t *testing.T) {
	path, ds := writeArtifact(t)
	bom, err := Build(path, ds, "1.0.0")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	out := filepath.Join(t.TempDir(), "nested", "vqa_dataset.bom.json")
	if err := WriteBOM(bom, out); err != nil {
		t.Fatalf("WriteBOM: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	var back cdx.BOM
	if err := cdx.NewBOMDecoder(f, cdx.BOMFileFormatJSON).Decode(&back); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Components == nil || len(*back.Components) != 1 {
		t.Fatalf("round-trip lost the data component")
	}
	if (*back.Components)[0].Name != "vqa_dataset.json" {
		t.Fatalf("component name = %q", (*back.Components)[0].Name)
	}
}
