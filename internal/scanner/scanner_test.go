package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeShard(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestScanFindsShardsRecursively(t *testing.T) {
	dir := t.TempDir()
	top := filepath.Join(dir, "merged_objdet_metadata_1.json")
	nested := filepath.Join(dir, "case01", "clips", "merged_objdet_metadata_2.json")
	writeShard(t, top)
	writeShard(t, nested)
	// Files not matching the pattern are ignored.
	writeShard(t, filepath.Join(dir, "notes.json"))
	writeShard(t, filepath.Join(dir, "case01", "merged_objdet_metadata_3.txt"))

	shards, err := Scan(dir, "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(shards) != 2 {
		t.Fatalf("found %d shards, want 2: %v", len(shards), shards)
	}
	for _, s := range shards {
		if s.Size != 2 {
			t.Errorf("shard %s size = %d, want 2", s.Path, s.Size)
		}
	}
}

func TestScanSortsByPath(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, filepath.Join(dir, "z", "merged_objdet_metadata_1.json"))
	writeShard(t, filepath.Join(dir, "a", "merged_objdet_metadata_1.json"))
	writeShard(t, filepath.Join(dir, "merged_objdet_metadata_0.json"))

	shards, err := Scan(dir, "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(shards) != 3 {
		t.Fatalf("found %d shards, want 3", len(shards))
	}
	for i := 1; i < len(shards); i++ {
		if shards[i-1].Path > shards[i].Path {
			t.Fatalf("shards not sorted: %q before %q", shards[i-1].Path, shards[i].Path)
		}
	}
}

func TestScanCurrentDirectoryRoot(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, filepath.Join(dir, "merged_objdet_metadata_1.json"))
	writeShard(t, filepath.Join(dir, "case01", "clips", "merged_objdet_metadata_2.json"))
	t.Chdir(dir)

	for _, root := range []string{".", ""} {
		shards, err := Scan(root, "")
		if err != nil {
			t.Fatalf("Scan(%q): %v", root, err)
		}
		if len(shards) != 2 {
			t.Fatalf("Scan(%q) found %d shards, want 2: %v", root, len(shards), shards)
		}
		var top, nested bool
		for _, s := range shards {
			switch filepath.Base(s.Path) {
			case "merged_objdet_metadata_1.json":
				top = true
			case "merged_objdet_metadata_2.json":
				nested = true
			}
		}
		if !top || !nested {
			t.Fatalf("Scan(%q) = %v, want the top-level and the nested shard", root, shards)
		}
	}
}

func TestScanEmptyResultIsNotAnError(t *testing.T) {
	shards, err := Scan(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(shards) != 0 {
		t.Fatalf("expected no shards, got %v", shards)
	}
}

func TestScanCustomPattern(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, filepath.Join(dir, "deep", "objdet_extra.json"))
	writeShard(t, filepath.Join(dir, "merged_objdet_metadata_1.json"))

	shards, err := Scan(dir, "**/objdet_*.json")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(shards) != 1 || filepath.Base(shards[0].Path) != "objdet_extra.json" {
		t.Fatalf("shards = %v, want only objdet_extra.json", shards)
	}
}
