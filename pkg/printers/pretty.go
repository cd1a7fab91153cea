package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
	"github.com/antoniocanovasleon/iberfoods/pkg/glyph"
	"github.com/antoniocanovasleon/iberfoods/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entrada")
	default:
		_, _ = c.Println(" entradas")
	}
}

// Agenda lists the entries active on a single day.
func (pp *PrettyPrint) Agenda(on time.Time, entries []entry.Entry) {
	h := color.New(color.Bold, color.Underline)
	_, _ = h.Printf("%s", on.Format(timeutil.LayoutISO))
	_, _ = color.New(color.Faint).Printf("  %s\n", timeutil.RelativeDay(on, timeutil.Date(time.Now())))

	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" nada\n\n")
		return
	}

	p := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			if pad := len(spacing) - len(e.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			} else {
				_, _ = y.Print("  ")
			}
		}
		g := glyph.ForCategory(e.Category, e.IsReminder())
		_, _ = p.Printf("%s %s %s\n", swatch(e.Color).Render(g.String()), e.Title, rangeSuffix(e))
	}
	_, _ = p.Println("")
}

func rangeSuffix(e entry.Entry) string {
	f := color.New(color.Faint)
	if e.Days() <= 1 {
		return f.Sprintf("(%s)", e.Start.Format(timeutil.LayoutISO))
	}
	return f.Sprintf("(%s → %s)", e.Start.Format(timeutil.LayoutISO), e.End.Format(timeutil.LayoutISO))
}

// swatch builds a style for an entry color, picking black or white text by
// luminance so low-saturation type colors stay readable.
func swatch(hex string) lipgloss.Style {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.NewStyle()
	}
	fg := "#ffffff"
	if _, y, _ := c.Xyz(); y > 0.45 {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg))
}

// clip truncates s to width cells, marking the cut with an ellipsis.
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// pad right-pads s with spaces to width cells.
func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
