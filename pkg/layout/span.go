package layout

import (
	"time"

	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
	"github.com/antoniocanovasleon/iberfoods/pkg/timeutil"
)

// Span is an entry's horizontal footprint within a window: the index of the
// day it starts on and how many consecutive displayed days it covers.
type Span struct {
	StartIndex int
	Length     int
}

// End is the index of the last covered day.
func (s Span) End() int { return s.StartIndex + s.Length - 1 }

// ResolveSpan locates e within the window. An entry is visible only when its
// start date is one of the window's days; entries whose range began before
// the window are deliberately not shown, even if they overlap it. That
// matches both views of the product and is a policy, not a bug: a bar with
// no visible start would have no cell to anchor its label to.
//
// When visible, Length covers every subsequent window day up to and
// including e.End, clipped at the window boundary. 1 ≤ Length and
// StartIndex+Length ≤ len(window) always hold.
func ResolveSpan(e entry.Entry, window []time.Time) (Span, bool) {
	start := -1
	for i, d := range window {
		if timeutil.SameDay(d, e.Start) {
			start = i
			break
		}
	}
	if start < 0 {
		return Span{}, false
	}

	length := 1
	for i := start + 1; i < len(window); i++ {
		if window[i].After(e.End) {
			break
		}
		length++
	}
	return Span{StartIndex: start, Length: length}, true
}
