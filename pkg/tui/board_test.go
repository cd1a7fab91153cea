package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/app"
)

type fakeClient struct {
	api.Client

	tasks   []api.Task
	updates map[string]api.TaskUpdate
}

func (f *fakeClient) Tasks(ctx context.Context) ([]api.Task, error)         { return f.tasks, nil }
func (f *fakeClient) TaskTypes(ctx context.Context) ([]api.TaskType, error) { return nil, nil }
func (f *fakeClient) Users(ctx context.Context) ([]api.User, error)         { return nil, nil }

func (f *fakeClient) UpdateTask(ctx context.Context, id string, in api.TaskUpdate) (api.Task, error) {
	if f.updates == nil {
		f.updates = make(map[string]api.TaskUpdate)
	}
	f.updates[id] = in
	return api.Task{ID: id}, nil
}

func boardModel(c *fakeClient) Model {
	return New(&app.Service{Client: c})
}

func loaded(m Model, tasks []api.Task) Model {
	seq := m.guard.Begin()
	next, _ := m.Update(loadedMsg{seq: seq, data: app.BoardData{Tasks: tasks}})
	return next.(Model)
}

func TestNavigationStaysInBounds(t *testing.T) {
	m := boardModel(&fakeClient{})
	m = loaded(m, []api.Task{
		{ID: "t-1", Status: api.StatusTodo, Position: 0},
		{ID: "t-2", Status: api.StatusTodo, Position: 1},
	})

	for _, k := range []string{"k", "k"} {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		m = next.(Model)
	}
	if m.row != 0 {
		t.Errorf("cursor escaped above: row=%d", m.row)
	}

	for _, k := range []string{"j", "j", "j", "j"} {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		m = next.(Model)
	}
	if m.row != 1 {
		t.Errorf("cursor escaped below: row=%d", m.row)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.col != 1 {
		t.Errorf("tab should advance column: col=%d", m.col)
	}
}

func TestShiftMovesTaskToNextStatus(t *testing.T) {
	c := &fakeClient{}
	m := boardModel(c)
	m = loaded(m, []api.Task{{ID: "t-1", Status: api.StatusTodo, Position: 0}})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected a move command")
	}

	msg := cmd()
	if _, ok := msg.(loadedMsg); !ok {
		t.Fatalf("move should reload: %T %v", msg, msg)
	}
	up, ok := c.updates["t-1"]
	if !ok || up.Status == nil || *up.Status != api.StatusInProgress {
		t.Fatalf("move did not hit the API: %+v", c.updates)
	}
	if m.col != 1 {
		t.Errorf("cursor should follow the task: col=%d", m.col)
	}
}

func TestShiftAtEdgeDoesNothing(t *testing.T) {
	c := &fakeClient{}
	m := boardModel(c)
	m = loaded(m, []api.Task{{ID: "t-1", Status: api.StatusTodo, Position: 0}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	if cmd != nil {
		t.Error("no column left of todo; expected no command")
	}
	if len(c.updates) != 0 {
		t.Errorf("edge move reached the API: %+v", c.updates)
	}
}

func TestStaleLoadIsDropped(t *testing.T) {
	m := boardModel(&fakeClient{})

	stale := m.guard.Begin()
	fresh := m.guard.Begin()

	next, _ := m.Update(loadedMsg{seq: fresh, data: app.BoardData{
		Tasks: []api.Task{{ID: "fresh", Status: api.StatusTodo}},
	}})
	m = next.(Model)

	next, _ = m.Update(loadedMsg{seq: stale, data: app.BoardData{
		Tasks: []api.Task{{ID: "stale", Status: api.StatusTodo}},
	}})
	m = next.(Model)

	if len(m.data.Tasks) != 1 || m.data.Tasks[0].ID != "fresh" {
		t.Fatalf("stale fetch overwrote fresh data: %+v", m.data.Tasks)
	}
}

func TestViewShowsColumns(t *testing.T) {
	m := boardModel(&fakeClient{})
	m = loaded(m, []api.Task{{ID: "t-1", Title: "Llamar a Mercamadrid", Status: api.StatusTodo}})

	out := m.View()
	for _, want := range []string{"Por hacer", "En progreso", "Completado", "Llamar a Mercamadrid"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
