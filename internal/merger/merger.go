// Package merger concatenates sharded metadata files into one record set.
package merger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/idlab-discover/vqagen-cli/internal/metadata"
)

// Result contains the merged records and metadata about the merge operation.
type Result struct {
	// Records is the concatenation of every successfully parsed shard,
	// preserving shard order and in-shard order.
	Records []metadata.Record
	// FilesParsed is the number of shards that contributed records
	// (including shards whose top level was valid but not an array).
	FilesParsed int
	// FilesSkipped is the number of shards dropped for read or parse errors.
	FilesSkipped int
	// Warnings describes each skipped shard, one message per file.
	Warnings []string
}

// ProgressFunc is called once per shard before it is parsed.
type ProgressFunc func(index, total int, path string)

// Merge reads every shard in order and concatenates their record arrays.
// A shard that cannot be read or parsed is skipped with a warning; it never
// aborts the merge. A shard whose top-level JSON is valid but not an array
// contributes zero records and no warning.
func Merge(paths []string, onProgress ProgressFunc) Result {
	var res Result
	for i, path := range paths {
		if onProgress != nil {
			onProgress(i, len(paths), path)
		}
		records, err := parseShard(path)
		if err != nil {
			msg := fmt.Sprintf("failed to read %s: %v", path, err)
			logf(path, "skipped: %v", err)
			res.Warnings = append(res.Warnings, msg)
			res.FilesSkipped++
			continue
		}
		res.Records = append(res.Records, records...)
		res.FilesParsed++
		logf(path, "parsed %d record(s)", len(records))
	}
	return res
}

// parseShard parses one shard file. The top level must be a JSON array to
// contribute records; any other valid JSON document yields zero records.
// Array elements that are not objects are skipped.
func parseShard(path string) ([]metadata.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		if json.Valid(data) {
			// Valid non-array document: nothing to merge from this shard.
			logf(path, "top-level JSON is not an array, ignoring")
			return nil, nil
		}
		return nil, err
	}

	records := make([]metadata.Record, 0, len(elems))
	for i, raw := range elems {
		// null elements unmarshal into a struct as a no-op, catch them here.
		if string(raw) == "null" {
			logf(path, "record %d is not an object, skipping", i)
			continue
		}
		var rec metadata.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			logf(path, "record %d is not an object, skipping", i)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
