// Package generator orchestrates the metadata-to-VQA-dataset pipeline:
// shard discovery, record merging, dataset assembly, artifact writing.
package generator

import (
	"fmt"

	"github.com/idlab-discover/vqagen-cli/internal/apperr"
	"github.com/idlab-discover/vqagen-cli/internal/dataset"
	dsio "github.com/idlab-discover/vqagen-cli/internal/io"
	"github.com/idlab-discover/vqagen-cli/internal/merger"
	"github.com/idlab-discover/vqagen-cli/internal/scanner"
)

// Options configures one generation run. The search root and output path are
// explicit so tests never depend on the process working directory.
type Options struct {
	// Root is the directory searched recursively for metadata shards.
	// Empty means the current directory.
	Root string
	// Pattern overrides the shard glob (scanner.DefaultPattern).
	Pattern string
	// Output is the artifact path. Empty means io.DefaultArtifactName
	// in the current directory.
	Output string
	// SelectShards optionally filters the discovered shards (interactive
	// mode). It receives every discovered shard and returns the paths to
	// keep, in order.
	SelectShards func([]scanner.Shard) ([]string, error)
	// OnProgress receives pipeline progress events.
	OnProgress ProgressCallback
}

// Result summarizes a completed run.
type Result struct {
	// EntryCount is the number of entries in the written artifact.
	EntryCount int
	// FileCount is the number of metadata shards processed (after
	// selection, including shards skipped for parse errors).
	FileCount int
	// FilesSkipped is the number of shards dropped with a warning.
	FilesSkipped int
	// SkippedRecords is the number of records without identity fields.
	SkippedRecords int
	// Warnings holds one message per skipped shard.
	Warnings []string
	// OutputPath is where the artifact was written.
	OutputPath string
}

// Run executes the pipeline. It fails before writing anything when no shard
// matches the pattern (a configuration error); per-shard and per-record
// problems are tolerated and reported in the Result instead.
func Run(opts Options) (Result, error) {
	progress := opts.OnProgress
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	output := opts.Output
	if output == "" {
		output = dsio.DefaultArtifactName
	}

	progress(ProgressEvent{Type: EventScanStart, Path: opts.Root})
	shards, err := scanner.Scan(opts.Root, opts.Pattern)
	if err != nil {
		return Result{}, err
	}
	if len(shards) == 0 {
		pattern := opts.Pattern
		if pattern == "" {
			pattern = scanner.DefaultPattern
		}
		return Result{}, apperr.Userf(
			"no metadata shards matching %q found. Place them under the search root or pass --input.", pattern)
	}
	progress(ProgressEvent{Type: EventScanComplete, Count: len(shards)})

	paths := make([]string, 0, len(shards))
	for _, s := range shards {
		paths = append(paths, s.Path)
	}
	if opts.SelectShards != nil {
		paths, err = opts.SelectShards(shards)
		if err != nil {
			return Result{}, err
		}
		if len(paths) == 0 {
			return Result{}, apperr.User("no metadata shards selected")
		}
	}

	merged := merger.Merge(paths, func(index, total int, path string) {
		progress(ProgressEvent{Type: EventMergeFile, Index: index, Total: total, Path: path})
	})
	progress(ProgressEvent{
		Type:    EventMergeComplete,
		Count:   len(merged.Records),
		Skipped: merged.FilesSkipped,
	})

	progress(ProgressEvent{Type: EventAssembleStart})
	ds, skippedRecords := dataset.Assemble(merged.Records)
	progress(ProgressEvent{
		Type:    EventAssembleComplete,
		Count:   ds.Len(),
		Skipped: skippedRecords,
	})

	progress(ProgressEvent{Type: EventWriteStart, Path: output})
	if err := dsio.WriteDataset(output, ds); err != nil {
		return Result{}, fmt.Errorf("write artifact: %w", err)
	}
	progress(ProgressEvent{Type: EventWriteComplete, Path: output})

	logf(output, "wrote %d entr(y/ies) from %d shard(s)", ds.Len(), len(paths))

	return Result{
		EntryCount:     ds.Len(),
		FileCount:      len(paths),
		FilesSkipped:   merged.FilesSkipped,
		SkippedRecords: skippedRecords,
		Warnings:       merged.Warnings,
		OutputPath:     output,
	}, nil
}
