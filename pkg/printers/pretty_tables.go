package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/glyph"
)

// EventTypes prints the type catalog with its color swatches.
func (pp *PrettyPrint) EventTypes(types []api.EventType) {
	pp.TitleWithCount("Tipos de evento", len(types))
	table := uitable.New()
	table.AddRow("ID", "", "NOMBRE", "CATEGORÍA", "COLOR")
	for _, t := range types {
		table.AddRow(t.ID, swatch(t.Color).Render("  "), t.Name, t.Category, t.Color)
	}
	fmt.Println(table)
	fmt.Println("")
}

// TaskTypes prints the kanban type catalog.
func (pp *PrettyPrint) TaskTypes(types []api.TaskType) {
	pp.TitleWithCount("Tipos de tarea", len(types))
	table := uitable.New()
	table.AddRow("ID", "", "NOMBRE", "COLOR")
	for _, t := range types {
		table.AddRow(t.ID, swatch(t.Color).Render("  "), t.Name, t.Color)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Users prints the user directory.
func (pp *PrettyPrint) Users(users []api.User) {
	pp.TitleWithCount("Usuarios", len(users))
	table := uitable.New()
	table.AddRow("ID", "NOMBRE", "EMAIL", "ROL")
	for _, u := range users {
		table.AddRow(u.ID, u.Name, u.Email, u.Role)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Orders prints the order list with status badges.
func (pp *PrettyPrint) Orders(orders []api.Order) {
	pp.TitleWithCount("Pedidos", len(orders))
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("", "Nº PEDIDO", "CLIENTE", "PROVEEDOR", "ESTADO")
	for _, o := range orders {
		badge := glyph.OrderActive
		if o.Status == api.OrderCompleted {
			badge = glyph.OrderCompleted
		}
		table.AddRow(badge.String(), o.OrderNumber, o.Client, o.Supplier, o.Status)
	}
	fmt.Println(table)
	fmt.Println("")
}

// LinkedEvents prints the documents hanging off one order.
func (pp *PrettyPrint) LinkedEvents(order api.Order, events []api.Event) {
	pp.TitleWithCount(fmt.Sprintf("Documentos de %s", order.OrderNumber), len(events))
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" ninguno\n\n")
		return
	}
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("FECHA", "TÍTULO", "PROVEEDOR", "IMPORTE")
	for _, e := range events {
		amount := "—"
		if e.Amount != nil {
			amount = fmt.Sprintf("%.2f €", *e.Amount)
		}
		table.AddRow(e.StartDate.Format("2006-01-02"), e.Title, e.Supplier, amount)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Legend prints what every symbol means.
func (pp *PrettyPrint) Legend() {
	pp.Title("Leyenda")
	table := uitable.New()
	for _, g := range glyph.DefaultGlyphs() {
		table.AddRow(g.Symbol, g.Meaning)
	}
	fmt.Println(table)
	fmt.Println("")
}
