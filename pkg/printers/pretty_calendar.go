package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
	"github.com/antoniocanovasleon/iberfoods/pkg/glyph"
	"github.com/antoniocanovasleon/iberfoods/pkg/layout"
)

// cellWidth is the printed width of one day column, bars included.
const cellWidth = 12

var weekdayHeads = []string{"lun", "mar", "mié", "jue", "vie", "sáb", "dom"}

var monthNames = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Month renders the focused month as a Monday-start grid. Each week prints
// its day numbers followed by one line per occupied track, so multi-day
// bars keep their lane across the whole window.
func (pp *PrettyPrint) Month(focus time.Time, days []layout.Day, placed []layout.Placement) {
	pp.monthTitle(focus)
	pp.weekHeader()

	for w := 0; w*7 < len(days); w++ {
		week := days[w*7 : w*7+7]
		pp.dayNumbers(week)
		pp.trackRows(placed, w*7, w*7+6)
	}
	fmt.Println("")
}

// Week renders a single Monday-start week.
func (pp *PrettyPrint) Week(days []layout.Day, placed []layout.Placement) {
	if len(days) != 7 {
		return
	}
	t := color.New(color.FgWhite, color.Italic)
	_, _ = t.Printf("semana del %d de %s\n", days[0].Date.Day(), monthNames[days[0].Date.Month()-1])

	pp.weekHeader()
	pp.dayNumbers(days)
	pp.trackRows(placed, 0, 6)
	fmt.Println("")
}

func (pp *PrettyPrint) monthTitle(focus time.Time) {
	t := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", monthNames[focus.Month()-1], focus.Year())
	width := 7 * cellWidth
	mid := (width - len([]rune(m))) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = t.Printf("%s%s\n", strings.Repeat(" ", mid), m)
}

func (pp *PrettyPrint) weekHeader() {
	h := color.New(color.Faint, color.Underline)
	for _, d := range weekdayHeads {
		_, _ = h.Print(pad(d, cellWidth-1))
		fmt.Print(" ")
	}
	fmt.Println("")
}

func (pp *PrettyPrint) dayNumbers(week []layout.Day) {
	plain := color.New(color.FgHiWhite)
	dim := color.New(color.Faint)
	today := color.New(color.Bold, color.ReverseVideo)

	for _, d := range week {
		printer := plain
		switch {
		case d.IsToday:
			printer = today
		case !d.InFocusedMonth, d.IsPast:
			printer = dim
		}
		_, _ = printer.Printf("%2d", d.Date.Day())
		fmt.Print(strings.Repeat(" ", cellWidth-2))
	}
	fmt.Println("")
}

// trackRows prints one line per track occupied inside [rowStart, rowEnd].
// Bars are clamped at the row edge and repeat their label on continuation
// rows, so a Thursday-to-Tuesday event reads the same in both weeks.
func (pp *PrettyPrint) trackRows(placed []layout.Placement, rowStart, rowEnd int) {
	maxTrack := -1
	for _, p := range placed {
		if p.Span.StartIndex <= rowEnd && p.Span.End() >= rowStart && p.Track > maxTrack {
			maxTrack = p.Track
		}
	}

	for t := 0; t <= maxTrack; t++ {
		var b strings.Builder
		col := rowStart
		for col <= rowEnd {
			p, ok := placementAt(placed, t, col)
			if !ok {
				b.WriteString(strings.Repeat(" ", cellWidth))
				col++
				continue
			}
			segEnd := p.Span.End()
			if segEnd > rowEnd {
				segEnd = rowEnd
			}
			width := (segEnd-col+1)*cellWidth - 1
			b.WriteString(swatch(p.Entry.Color).Render(pad(clip(barLabel(p.Entry), width), width)))
			b.WriteString(" ")
			col = segEnd + 1
		}
		fmt.Println(b.String())
	}
}

func placementAt(placed []layout.Placement, track, index int) (layout.Placement, bool) {
	for _, p := range placed {
		if p.Track == track && p.Span.StartIndex <= index && index <= p.Span.End() {
			return p, true
		}
	}
	return layout.Placement{}, false
}

func barLabel(e entry.Entry) string {
	label := glyph.ForCategory(e.Category, e.IsReminder()).String() + " " + e.Title
	if e.LinkedOrderID != "" {
		label += " " + glyph.Linked.String()
	}
	return label
}
