package printers

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/glyph"
)

var columnTitles = map[string]string{
	api.StatusTodo:       "Por hacer",
	api.StatusInProgress: "En progreso",
	api.StatusDone:       "Completado",
}

// Board prints the kanban columns one after another, each sorted by the
// server-side position.
func (pp *PrettyPrint) Board(tasks []api.Task, types []api.TaskType, users []api.User) {
	typeName := make(map[string]string, len(types))
	for _, t := range types {
		typeName[t.ID] = t.Name
	}
	userName := make(map[string]string, len(users))
	for _, u := range users {
		userName[u.ID] = u.Name
	}

	for _, status := range []string{api.StatusTodo, api.StatusInProgress, api.StatusDone} {
		column := make([]api.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Status == status {
				column = append(column, t)
			}
		}
		sort.SliceStable(column, func(i, j int) bool {
			return column[i].Position < column[j].Position
		})

		pp.TitleWithCount(fmt.Sprintf("%s %s", glyph.ForStatus(status), columnTitles[status]), len(column))
		if len(column) == 0 {
			f := color.New(color.Faint, color.Italic)
			_, _ = f.Print(" nada\n\n")
			continue
		}

		table := uitable.New()
		table.MaxColWidth = 50
		if pp.ShowID {
			table.AddRow("ID", "", "TAREA", "TIPO", "ASIGNADA A")
		} else {
			table.AddRow("", "TAREA", "TIPO", "ASIGNADA A")
		}
		for _, t := range column {
			badge := glyph.ForPriority(t.Priority).String()
			assignee := userName[t.AssignedTo]
			if assignee == "" {
				assignee = "—"
			}
			if pp.ShowID {
				table.AddRow(t.ID, badge, t.Title, typeName[t.TaskTypeID], assignee)
			} else {
				table.AddRow(badge, t.Title, typeName[t.TaskTypeID], assignee)
			}
		}
		fmt.Println(table)
		fmt.Println("")
	}
}
