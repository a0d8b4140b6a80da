package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// spinnerFrames defines the spinner animation frames
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// TaskStatus represents the status of a task
type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskRunning
	TaskDone
	TaskFailed
	TaskSkipped
)

// Task represents a single task in the workflow
type Task struct {
	Name    string
	Status  TaskStatus
	Message string
	Details string // Additional details shown when complete
}

// Workflow manages a list of tasks with visual progress
type Workflow struct {
	writer     io.Writer
	tasks      []*Task
	mu         sync.Mutex
	spinnerIdx int
	stopChan   chan struct{}
	running    bool
	lastRender string
	startTime  time.Time
}

// NewWorkflow creates a new workflow tracker
func NewWorkflow(w io.Writer) *Workflow {
	return &Workflow{
		writer:   w,
		tasks:    make([]*Task, 0),
		stopChan: make(chan struct{}),
	}
}

// AddTask adds a new task to the workflow and returns its index
func (wf *Workflow) AddTask(name string) int {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	wf.tasks = append(wf.tasks, &Task{Name: name, Status: TaskPending})
	return len(wf.tasks) - 1
}

// StartTask marks a task as running
func (wf *Workflow) StartTask(idx int, message string) {
	wf.setTask(idx, func(t *Task) {
		t.Status = TaskRunning
		t.Message = message
	})
}

// CompleteTask marks a task as done
func (wf *Workflow) CompleteTask(idx int, details string) {
	wf.setTask(idx, func(t *Task) {
		t.Status = TaskDone
		t.Message = ""
		t.Details = details
	})
}

// FailTask marks a task as failed
func (wf *Workflow) FailTask(idx int, errMsg string) {
	wf.setTask(idx, func(t *Task) {
		t.Status = TaskFailed
		t.Message = errMsg
	})
}

// SkipTask marks a task as skipped
func (wf *Workflow) SkipTask(idx int, reason string) {
	wf.setTask(idx, func(t *Task) {
		t.Status = TaskSkipped
		t.Message = reason
	})
}

// UpdateMessage updates the message of a task
func (wf *Workflow) UpdateMessage(idx int, message string) {
	wf.setTask(idx, func(t *Task) { t.Message = message })
}

func (wf *Workflow) setTask(idx int, fn func(*Task)) {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	if idx >= 0 && idx < len(wf.tasks) {
		fn(wf.tasks[idx])
	}
}

// Start begins the workflow display with animation
func (wf *Workflow) Start() {
	wf.mu.Lock()
	if wf.running {
		wf.mu.Unlock()
		return
	}
	wf.running = true
	wf.startTime = time.Now()
	wf.mu.Unlock()

	go func() {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-wf.stopChan:
				return
			case <-ticker.C:
				wf.mu.Lock()
				wf.spinnerIdx = (wf.spinnerIdx + 1) % len(spinnerFrames)
				wf.mu.Unlock()
				wf.render(false)
			}
		}
	}()
}

// Stop ends the workflow display and renders the final state
func (wf *Workflow) Stop() {
	wf.mu.Lock()
	if !wf.running {
		wf.mu.Unlock()
		return
	}
	wf.running = false
	wf.mu.Unlock()

	close(wf.stopChan)
	wf.render(true)
}

// render displays the current state, clearing the previous frame first
func (wf *Workflow) render(final bool) {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	var b strings.Builder

	if wf.lastRender != "" {
		lineCount := strings.Count(wf.lastRender, "\n") + 1
		for i := 0; i < lineCount; i++ {
			b.WriteString("\033[A\033[K") // Move up and clear line
		}
	}

	for _, task := range wf.tasks {
		b.WriteString(wf.renderTask(task, final))
		b.WriteString("\n")
	}

	output := b.String()
	if final {
		wf.lastRender = ""
	} else {
		wf.lastRender = strings.TrimSuffix(output, "\n")
	}
	fmt.Fprint(wf.writer, output)
}

func (wf *Workflow) renderTask(task *Task, final bool) string {
	var icon string
	var nameStyle styleWrapper
	var msgStyle styleWrapper

	switch task.Status {
	case TaskPending:
		icon = Muted.Render("○")
		nameStyle = StepPending
		msgStyle = Dim
	case TaskRunning:
		if final {
			icon = Muted.Render("○")
		} else {
			icon = Secondary.Render(spinnerFrames[wf.spinnerIdx])
		}
		nameStyle = StepRunning
		msgStyle = Secondary
	case TaskDone:
		icon = GetCheckMark()
		nameStyle = StepComplete
		msgStyle = Dim
	case TaskFailed:
		icon = GetCrossMark()
		nameStyle = StepFailed
		msgStyle = Error
	case TaskSkipped:
		icon = Warning.Render("⊘")
		nameStyle = StepSkipped
		msgStyle = Warning
	}

	line := fmt.Sprintf("%s %s", icon, nameStyle.Render(task.Name))
	if task.Message != "" {
		line += " " + msgStyle.Render(task.Message)
	}
	if task.Status == TaskDone && task.Details != "" {
		line += " " + Dim.Render(task.Details)
	}

	return line
}
