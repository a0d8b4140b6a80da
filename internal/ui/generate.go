package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// GenerateUI provides a rich UI for the generate command
type GenerateUI struct {
	writer    io.Writer
	quiet     bool
	workflow  *Workflow
	current   int
	startTime time.Time
}

// NewGenerateUI creates a new UI handler for the generate command
func NewGenerateUI(w io.Writer, quiet bool) *GenerateUI {
	return &GenerateUI{
		writer:    w,
		quiet:     quiet,
		startTime: time.Now(),
	}
}

// Task indices into the generation workflow. AddTask order must match.
const (
	taskDiscover = iota
	taskMerge
	taskAssemble
	taskWrite
)

// StartWorkflow initializes and displays the workflow for dataset generation
func (g *GenerateUI) StartWorkflow() {
	if g.quiet {
		return
	}

	g.startTime = time.Now()

	g.workflow = NewWorkflow(g.writer)
	g.workflow.AddTask("Discovering metadata shards")
	g.workflow.AddTask("Merging detection records")
	g.workflow.AddTask("Assembling VQA dataset")
	g.workflow.AddTask("Writing artifact")
	g.workflow.Start()
}

// StartDiscovery marks shard discovery as running
func (g *GenerateUI) StartDiscovery(root string) {
	if g.quiet || g.workflow == nil {
		return
	}
	g.current = taskDiscover
	g.workflow.StartTask(taskDiscover, Dim.Render(root))
}

// CompleteDiscovery marks shard discovery as complete
func (g *GenerateUI) CompleteDiscovery(count int) {
	if g.quiet || g.workflow == nil {
		return
	}
	g.workflow.CompleteTask(taskDiscover, fmt.Sprintf("found %d shard(s)", count))
}

// Fail marks the stage currently running as failed, skips the stages after
// it and stops the workflow display.
func (g *GenerateUI) Fail(errMsg string) {
	if g.quiet || g.workflow == nil {
		return
	}
	g.workflow.FailTask(g.current, errMsg)
	for idx := g.current + 1; idx <= taskWrite; idx++ {
		g.workflow.SkipTask(idx, "")
	}
	g.workflow.Stop()
}

// StartMerging marks record merging as running
func (g *GenerateUI) StartMerging() {
	if g.quiet || g.workflow == nil {
		return
	}
	g.current = taskMerge
	g.workflow.StartTask(taskMerge, "")
}

// UpdateMergingFile updates the merge task with the shard being parsed
func (g *GenerateUI) UpdateMergingFile(done, total int, path string) {
	if g.quiet || g.workflow == nil {
		return
	}
	g.workflow.UpdateMessage(taskMerge, Dim.Render(fmt.Sprintf("%d/%d: %s", done, total, path)))
}

// CompleteMerging marks record merging as complete
func (g *GenerateUI) CompleteMerging(records, skippedFiles int) {
	if g.quiet || g.workflow == nil {
		return
	}
	details := fmt.Sprintf("%d record(s)", records)
	if skippedFiles > 0 {
		details += fmt.Sprintf(", %d file(s) skipped", skippedFiles)
	}
	g.workflow.CompleteTask(taskMerge, details)
}

// StartAssembling marks dataset assembly as running
func (g *GenerateUI) StartAssembling() {
	if g.quiet || g.workflow == nil {
		return
	}
	g.current = taskAssemble
	g.workflow.StartTask(taskAssemble, "")
}

// CompleteAssembling marks dataset assembly as complete
func (g *GenerateUI) CompleteAssembling(entries, skippedRecords int) {
	if g.quiet || g.workflow == nil {
		return
	}
	details := fmt.Sprintf("%d entr(y/ies)", entries)
	if skippedRecords > 0 {
		details += fmt.Sprintf(", %d record(s) without identity", skippedRecords)
	}
	g.workflow.CompleteTask(taskAssemble, details)
}

// StartWriting marks artifact writing as running
func (g *GenerateUI) StartWriting(path string) {
	if g.quiet || g.workflow == nil {
		return
	}
	g.current = taskWrite
	g.workflow.StartTask(taskWrite, Dim.Render(path))
}

// CompleteWriting marks artifact writing as complete
func (g *GenerateUI) CompleteWriting(path string) {
	if g.quiet || g.workflow == nil {
		return
	}
	g.workflow.CompleteTask(taskWrite, path)
}

// FinishWorkflow completes the workflow display
func (g *GenerateUI) FinishWorkflow() {
	if g.quiet || g.workflow == nil {
		return
	}
	g.workflow.Stop()
}

// PrintWarnings prints per-file merge warnings after the workflow completes
func (g *GenerateUI) PrintWarnings(warnings []string) {
	if g.quiet || len(warnings) == 0 {
		return
	}
	fmt.Fprintln(g.writer)
	for _, w := range warnings {
		fmt.Fprintf(g.writer, "  %s %s\n", GetWarnMark(), Warning.Render(w))
	}
}

// PrintSummary prints a final summary box
func (g *GenerateUI) PrintSummary(entries, files int, outputPath string) {
	if g.quiet {
		return
	}

	elapsed := time.Since(g.startTime)

	fmt.Fprintln(g.writer)

	var summary strings.Builder
	summary.WriteString(Success.Bold(true).Render("Generation Complete"))
	summary.WriteString("\n\n")
	summary.WriteString(FormatKeyValue("Entries", fmt.Sprintf("%d", entries)))
	summary.WriteString("\n")
	summary.WriteString(FormatKeyValue("Metadata files", fmt.Sprintf("%d", files)))
	summary.WriteString("\n")
	summary.WriteString(FormatKeyValue("Artifact", outputPath))
	summary.WriteString("\n")
	summary.WriteString(FormatKeyValue("Duration", elapsed.Round(time.Millisecond).String()))

	fmt.Fprintln(g.writer, SuccessBox.Render(summary.String()))
}
