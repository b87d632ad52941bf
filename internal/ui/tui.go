// Package ui provides an optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MarkusG/todo-go/internal/todo"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// RunTUI starts a read-only viewer over the store. The store file is
// re-read every second and on manual refresh; the viewer never writes.
func RunTUI(ctx context.Context, store *todo.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(store)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	store        *todo.Store
	entries      []todo.Entry
	loadErr      error
	cursor       int
	height       int
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newTUIModel(store *todo.Store) *tuiModel {
	return &tuiModel{
		store:        store,
		tickInterval: time.Second,
		height:       24,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "up", "k":
			m.cursor--
			m.clampCursor()
			return m, nil
		case "down", "j":
			m.cursor++
			m.clampCursor()
			return m, nil
		case "g", "home":
			m.cursor = 0
			return m, nil
		case "G", "end":
			m.cursor = len(m.entries) - 1
			m.clampCursor()
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("todo") + "  " + dimStyle.Render(m.store.Path) + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString("Error loading store file:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}

	if len(m.entries) == 0 {
		b.WriteString("  No entries.\n\n")
		writeFooter(&b)
		return b.String()
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		line := fmt.Sprintf("  %d. %s", m.entries[i].Index, m.entries[i].Content)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d entries", len(m.entries))) + "\n")
	writeFooter(&b)
	return b.String()
}

// window returns the visible slice bounds keeping the cursor in view.
func (m *tuiModel) window() (int, int) {
	// Title, blank, blank, count, footer.
	visible := m.height - 5
	if visible < 1 {
		visible = 1
	}
	if len(m.entries) <= visible {
		return 0, len(m.entries)
	}

	start := m.cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > len(m.entries) {
		start = len(m.entries) - visible
	}
	return start, start + visible
}

func (m *tuiModel) clampCursor() {
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) refresh() {
	entries, err := m.store.List()
	if err != nil {
		m.loadErr = err
		m.entries = nil
		return
	}
	m.loadErr = nil
	m.entries = entries
	m.clampCursor()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh now\n")
	b.WriteString("  up/k down/j  Move selection\n")
	b.WriteString("  g/G          Jump to first/last entry\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(dimStyle.Render("h help | q quit | refreshing every 1s") + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
