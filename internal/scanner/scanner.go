// Package scanner discovers object-detection metadata shards on disk.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/yargevad/filepathx"
)

// DefaultPattern matches the merged object-detection shards produced by the
// upstream annotation pipeline. ** matches any number of directories,
// including none, so shards directly under the search root are found too.
const DefaultPattern = "**/merged_objdet_metadata_*.json"

// Shard is one discovered metadata file.
type Shard struct {
	Path string
	Size int64
}

// Scan discovers all metadata shards under root matching the glob pattern.
// Results are sorted by path so downstream record order is deterministic.
// An empty result is not an error here; callers decide whether zero shards
// is fatal.
func Scan(root, pattern string) ([]Shard, error) {
	if root == "" {
		root = "."
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	full := filepath.Join(root, pattern)
	if root == "." {
		// Join cleans away the "./" prefix, leaving a pattern that starts
		// with "**", which filepathx expands to nothing. Keep the prefix so
		// the first segment globs the current directory.
		full = "./" + pattern
	}
	matches, err := filepathx.Glob(full)
	if err != nil {
		return nil, fmt.Errorf("glob %q under %s: %w", pattern, root, err)
	}
	sort.Strings(matches)

	shards := make([]Shard, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			// Size is cosmetic; an unreadable shard surfaces again when parsed.
			logf(path, "stat failed: %v", err)
			shards = append(shards, Shard{Path: path})
			continue
		}
		if info.IsDir() {
			continue
		}
		shards = append(shards, Shard{Path: path, Size: info.Size()})
		logf(path, "discovered (%d bytes)", info.Size())
	}
	return shards, nil
}
