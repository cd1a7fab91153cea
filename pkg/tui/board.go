// Package tui is the interactive kanban board. It is a thin shell over
// app.Service: every move is one PUT followed by a full reload, and the
// screen only ever paints what the last accepted reload returned.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/glyph"
)

var statuses = []string{api.StatusTodo, api.StatusInProgress, api.StatusDone}

var statusTitles = map[string]string{
	api.StatusTodo:       "Por hacer",
	api.StatusInProgress: "En progreso",
	api.StatusDone:       "Completado",
}

type loadedMsg struct {
	seq  uint64
	data app.BoardData
}

type errMsg struct {
	seq uint64
	err error
}

type Model struct {
	svc   *app.Service
	guard *api.Guard

	data    app.BoardData
	col     int
	row     int
	loading bool
	err     error
	spin    spinner.Model

	width  int
	height int
}

func New(svc *app.Service) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{
		svc:     svc,
		guard:   &api.Guard{},
		loading: true,
		spin:    s,
		width:   100,
		height:  30,
	}
}

func (m Model) Init() tea.Cmd { return tea.Batch(m.reload(), m.spin.Tick) }

// reload fetches the whole board. The guard sequence makes sure a slow
// fetch that returns after a newer one never wins.
func (m Model) reload() tea.Cmd {
	seq := m.guard.Begin()
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		data, err := svc.Board(ctx)
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return loadedMsg{seq: seq, data: data}
	}
}

// move changes the selected task's column, then reloads.
func (m Model) move(id, status string) tea.Cmd {
	seq := m.guard.Begin()
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		data, err := svc.MoveTask(ctx, id, status, nil)
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return loadedMsg{seq: seq, data: data}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		if !m.guard.Accept(msg.seq) {
			return m, nil
		}
		m.data = msg.data
		m.loading = false
		m.err = nil
		m.clampCursor()
		return m, nil

	case errMsg:
		if !m.guard.Accept(msg.seq) {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, tea.Batch(m.reload(), m.spin.Tick)
		case "j", "down":
			m.row++
			m.clampCursor()
			return m, nil
		case "k", "up":
			m.row--
			m.clampCursor()
			return m, nil
		case "tab", "right":
			m.col++
			m.clampCursor()
			return m, nil
		case "shift+tab", "left":
			m.col--
			m.clampCursor()
			return m, nil
		case "h":
			return m.shift(-1)
		case "l":
			return m.shift(+1)
		}
	}
	return m, nil
}

// shift moves the selected task one column left or right.
func (m Model) shift(delta int) (tea.Model, tea.Cmd) {
	task, ok := m.selected()
	if !ok {
		return m, nil
	}
	target := m.col + delta
	if target < 0 || target >= len(statuses) {
		return m, nil
	}
	m.col = target
	m.row = 0
	m.loading = true
	return m, m.move(task.ID, statuses[target])
}

// selected returns the task under the cursor.
func (m Model) selected() (api.Task, bool) {
	column := m.column(m.col)
	if m.row < 0 || m.row >= len(column) {
		return api.Task{}, false
	}
	return column[m.row], true
}

// column returns the tasks for one status, ordered by position.
func (m Model) column(col int) []api.Task {
	if col < 0 || col >= len(statuses) {
		return nil
	}
	status := statuses[col]
	out := make([]api.Task, 0, len(m.data.Tasks))
	for _, t := range m.data.Tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func (m *Model) clampCursor() {
	if m.col < 0 {
		m.col = 0
	}
	if m.col >= len(statuses) {
		m.col = len(statuses) - 1
	}
	column := m.column(m.col)
	if m.row >= len(column) {
		m.row = len(column) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	focusedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("6"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func (m Model) View() string {
	colWidth := m.width/len(statuses) - 4
	if colWidth < 20 {
		colWidth = 20
	}

	userName := make(map[string]string, len(m.data.Users))
	for _, u := range m.data.Users {
		userName[u.ID] = u.Name
	}

	cols := make([]string, 0, len(statuses))
	for c, status := range statuses {
		column := m.column(c)

		var b strings.Builder
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s (%d)",
			glyph.ForStatus(status), statusTitles[status], len(column))))
		b.WriteString("\n")

		if len(column) == 0 {
			b.WriteString(mutedStyle.Render("  nada"))
			b.WriteString("\n")
		}
		for r, t := range column {
			line := fmt.Sprintf("%s %s", glyph.ForPriority(t.Priority), clip(t.Title, colWidth-8))
			if who := userName[t.AssignedTo]; who != "" {
				line += mutedStyle.Render(" · " + who)
			}
			if c == m.col && r == m.row {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		style := columnStyle
		if c == m.col {
			style = focusedColumnStyle
		}
		cols = append(cols, style.Width(colWidth).Render(b.String()))
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	footer := "j/k mover · tab columna · h/l arrastrar · r recargar · q salir"
	if m.loading {
		footer = m.spin.View() + " cargando…"
	}
	if m.err != nil {
		footer = errStyle.Render(m.err.Error())
	}
	return out + "\n" + mutedStyle.Render(footer) + "\n"
}

func clip(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return string(r[:1])
	}
	return string(r[:width-1]) + "…"
}

// Run starts the board program on the alternate screen.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
