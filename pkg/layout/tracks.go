package layout

import (
	"sort"
	"time"

	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
)

// Placement is a fully laid-out entry: its span within the window and the
// vertical track the allocator assigned.
type Placement struct {
	Entry entry.Entry
	Span  Span
	Track int
}

// Month lays out entries for a month window. Track occupancy is kept per
// absolute day index across the whole grid, so an entry keeps the same track
// number whichever calendar row it starts in.
func Month(entries []entry.Entry, window []time.Time) []Placement {
	placed := resolve(entries, window)
	assignTracks(placed, len(window), func(s Span) (int, int) {
		return s.StartIndex, s.End()
	})
	return placed
}

// Week lays out entries for a single 7-day window. Occupancy is kept per
// day-of-week column and starts fresh on every call, packing tracks from 0
// with no gaps; nothing carries over between weeks.
func Week(entries []entry.Entry, window []time.Time) []Placement {
	placed := resolve(entries, window)
	assignTracks(placed, 7, func(s Span) (int, int) {
		end := s.End()
		if end > 6 {
			end = 6
		}
		return s.StartIndex, end
	})
	return placed
}

// resolve drops entries that are not visible and orders the rest with the
// deterministic comparison both allocators share. The result is stable for
// a given entry set regardless of input order, which keeps bars from
// jumping between tracks across re-renders.
func resolve(entries []entry.Entry, window []time.Time) []Placement {
	placed := make([]Placement, 0, len(entries))
	for _, e := range entries {
		if span, ok := ResolveSpan(e, window); ok {
			placed = append(placed, Placement{Entry: e, Span: span, Track: -1})
		}
	}

	sort.Slice(placed, func(i, j int) bool {
		a, b := placed[i].Span, placed[j].Span
		if a.StartIndex != b.StartIndex {
			return a.StartIndex < b.StartIndex
		}
		// Longer entries claim low tracks first.
		if a.Length != b.Length {
			return a.Length > b.Length
		}
		if a.End() != b.End() {
			return a.End() < b.End()
		}
		// Entry ids are stable across reloads; object order is not.
		return placed[i].Entry.ID < placed[j].Entry.ID
	})
	return placed
}

// assignTracks runs greedy first-fit over the sorted placements. bounds maps
// a span to the inclusive [start, end] day positions it occupies in the
// occupancy table.
func assignTracks(placed []Placement, positions int, bounds func(Span) (int, int)) {
	occupied := make([]map[int]bool, positions)
	for i := range occupied {
		occupied[i] = make(map[int]bool)
	}

	for i := range placed {
		start, end := bounds(placed[i].Span)

		track := 0
		for {
			free := true
			for day := start; day <= end; day++ {
				if occupied[day][track] {
					free = false
					break
				}
			}
			if free {
				break
			}
			track++
		}

		for day := start; day <= end; day++ {
			occupied[day][track] = true
		}
		placed[i].Track = track
	}
}

// TrackCount returns how many tracks the placements use (max track + 1).
func TrackCount(placed []Placement) int {
	max := -1
	for _, p := range placed {
		if p.Track > max {
			max = p.Track
		}
	}
	return max + 1
}
