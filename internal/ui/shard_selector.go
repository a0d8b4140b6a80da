package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idlab-discover/vqagen-cli/internal/apperr"
)

// ShardOption is one selectable metadata shard.
type ShardOption struct {
	Path string
	Size int64
}

// shardItem represents a shard in the list
type shardItem struct {
	path     string
	size     int64
	selected bool
}

func (i shardItem) Title() string {
	var checkbox string
	if i.selected {
		checkbox = Success.Render("[✓] ")
	} else {
		checkbox = Dim.Render("[ ] ")
	}
	return checkbox + i.path
}

func (i shardItem) Description() string {
	return Dim.Render(formatSize(i.size))
}

func (i shardItem) FilterValue() string { return i.path }

// shardSelectorModel is the Bubble Tea model for the interactive shard selector
type shardSelectorModel struct {
	list      list.Model
	items     []list.Item
	selected  map[string]bool
	quitting  bool
	confirmed bool
}

// newShardSelector creates a selector with every shard preselected,
// so confirming without changes keeps the full input set.
func newShardSelector(options []ShardOption) *shardSelectorModel {
	selected := make(map[string]bool, len(options))
	items := make([]list.Item, len(options))
	for i, opt := range options {
		selected[opt.Path] = true
		items[i] = shardItem{path: opt.Path, size: opt.Size, selected: true}
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorHighlight).
		BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorTextDim).
		BorderForeground(ColorPrimary)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select Metadata Shards"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)

	return &shardSelectorModel{
		list:     l,
		items:    items,
		selected: selected,
	}
}

// Init initializes the model
func (m *shardSelectorModel) Init() tea.Cmd { return nil }

// Update handles messages
func (m *shardSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "s", " ":
			if i, ok := m.list.SelectedItem().(shardItem); ok {
				m.selected[i.path] = !m.selected[i.path]
				m.updateItemSelection(i.path, m.selected[i.path])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model
func (m *shardSelectorModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var b strings.Builder

	b.WriteString(m.list.View())
	b.WriteString("\n\n")

	count := 0
	for _, sel := range m.selected {
		if sel {
			count++
		}
	}
	b.WriteString(fmt.Sprintf("%s %s\n",
		Success.Render("Selected:"),
		Highlight.Render(fmt.Sprintf("%d shard(s)", count))))

	helpStyle := lipgloss.NewStyle().Foreground(ColorTextDim)
	b.WriteString(helpStyle.Render("s/space: toggle · ↑/↓: navigate · enter: confirm · esc: cancel"))

	return tea.NewView(b.String())
}

// updateItemSelection updates the selected state of an item
func (m *shardSelectorModel) updateItemSelection(path string, selected bool) {
	for i, item := range m.items {
		if si, ok := item.(shardItem); ok && si.path == path {
			m.items[i] = shardItem{path: si.path, size: si.size, selected: selected}
			break
		}
	}
	m.list.SetItems(m.items)
}

// selectedPaths returns the chosen shard paths in original list order
func (m *shardSelectorModel) selectedPaths() []string {
	var paths []string
	for _, item := range m.items {
		if si, ok := item.(shardItem); ok && m.selected[si.path] {
			paths = append(paths, si.path)
		}
	}
	return paths
}

// RunShardSelector runs the interactive shard selector and returns the
// selected shard paths, preserving the input order. A cancelled selection
// returns apperr.ErrCancelled.
func RunShardSelector(options []ShardOption) ([]string, error) {
	p := tea.NewProgram(newShardSelector(options))
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	model := m.(*shardSelectorModel)
	if !model.confirmed {
		return nil, apperr.ErrCancelled
	}

	return model.selectedPaths(), nil
}

// formatSize renders a byte count for humans
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
