package generator

// ProgressCallback is called during generation to report progress
type ProgressCallback func(event ProgressEvent)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Type    ProgressEventType
	Path    string
	Index   int
	Total   int
	Count   int
	Skipped int
}

// ProgressEventType identifies the type of progress event
type ProgressEventType int

const (
	EventScanStart ProgressEventType = iota
	EventScanComplete
	EventMergeFile
	EventMergeComplete
	EventAssembleStart
	EventAssembleComplete
	EventWriteStart
	EventWriteComplete
)
