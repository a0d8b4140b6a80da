// Package dataset assembles merged metadata records into the keyed,
// insertion-ordered VQA dataset mapping.
package dataset

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/idlab-discover/vqagen-cli/internal/metadata"
	"github.com/idlab-discover/vqagen-cli/internal/qa"
)

// Entry is one segment's transformation result.
type Entry struct {
	VideoPath       string    `json:"video_path"`
	DetectedObjects []string  `json:"detected_objects"`
	QAPairs         []qa.Pair `json:"qa_pairs"`
}

// Dataset maps dataset keys to entries in insertion order. Re-setting an
// existing key replaces the entry but keeps its original position, so
// duplicate (case_id, index) pairs across shards resolve last-write-wins
// without reordering the artifact.
type Dataset struct {
	m *orderedmap.OrderedMap[string, Entry]
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{m: orderedmap.New[string, Entry]()}
}

// Key derives the segment identity string for a record. It is stable and
// collision-free for distinct (case_id, index) pairs.
func Key(r metadata.Record) string {
	return fmt.Sprintf("%s_id%s", r.CaseID, r.Index)
}

// Set inserts or overwrites the entry for key.
func (d *Dataset) Set(key string, e Entry) { d.m.Set(key, e) }

// Get returns the entry for key.
func (d *Dataset) Get(key string) (Entry, bool) { return d.m.Get(key) }

// Len returns the number of entries.
func (d *Dataset) Len() int { return d.m.Len() }

// Each calls fn for every entry in insertion order.
func (d *Dataset) Each(fn func(key string, e Entry)) {
	for pair := d.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Keys returns all keys in insertion order.
func (d *Dataset) Keys() []string {
	keys := make([]string, 0, d.m.Len())
	for pair := d.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON encodes the dataset as a JSON object whose keys appear in
// insertion order.
func (d *Dataset) MarshalJSON() ([]byte, error) { return d.m.MarshalJSON() }

// UnmarshalJSON decodes a dataset object, preserving key order.
func (d *Dataset) UnmarshalJSON(b []byte) error {
	d.m = orderedmap.New[string, Entry]()
	return d.m.UnmarshalJSON(b)
}

// Assemble builds the dataset from merged records in input order. Records
// missing case_id or index contribute nothing; their count is returned for
// reporting. Builder fallbacks handle every other field shape, so assembly
// itself cannot fail.
func Assemble(records []metadata.Record) (*Dataset, int) {
	ds := New()
	skipped := 0
	for _, rec := range records {
		if !rec.Eligible() {
			skipped++
			continue
		}
		key := Key(rec)
		ds.Set(key, buildEntry(key, rec))
	}
	logf("assembled %d entr(y/ies), skipped %d record(s) without identity", ds.Len(), skipped)
	return ds, skipped
}

func buildEntry(key string, rec metadata.Record) Entry {
	objects := rec.Tools
	if objects == nil {
		// Serialize as [] rather than null when no tools were detected.
		objects = []string{}
	}
	return Entry{
		VideoPath:       key + ".mp4",
		DetectedObjects: objects,
		QAPairs:         qa.BuildPairs(rec.Tools, rec.TaskName),
	}
}
