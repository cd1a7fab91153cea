package layout

import (
	"math/rand"
	"testing"
	"time"

	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
)

func trackByID(placed []Placement) map[string]int {
	m := make(map[string]int, len(placed))
	for _, p := range placed {
		m[p.Entry.ID] = p.Track
	}
	return m
}

func TestWeekTracksCollision(t *testing.T) {
	window := Window(date(2025, time.March, 12), ModeWeek) // Mon Mar 10 – Sun Mar 16

	// A spans Mon–Wed, B sits on Tue only. A sorts first (earlier start),
	// takes track 0; B collides on Tuesday and is pushed to track 1.
	entries := []entry.Entry{
		testEntry("B", date(2025, time.March, 11), date(2025, time.March, 11)),
		testEntry("A", date(2025, time.March, 10), date(2025, time.March, 12)),
	}

	placed := Week(entries, window)
	tracks := trackByID(placed)
	if tracks["A"] != 0 {
		t.Errorf("A track = %d, want 0", tracks["A"])
	}
	if tracks["B"] != 1 {
		t.Errorf("B track = %d, want 1", tracks["B"])
	}
}

func TestWeekTracksPackFromZero(t *testing.T) {
	window := Window(date(2025, time.March, 12), ModeWeek)

	// Disjoint ranges reuse track 0; the week variant never leaves gaps.
	entries := []entry.Entry{
		testEntry("mon", date(2025, time.March, 10), date(2025, time.March, 11)),
		testEntry("thu", date(2025, time.March, 13), date(2025, time.March, 14)),
		testEntry("sun", date(2025, time.March, 16), date(2025, time.March, 16)),
	}
	placed := Week(entries, window)
	for _, p := range placed {
		if p.Track != 0 {
			t.Errorf("%s track = %d, want 0", p.Entry.ID, p.Track)
		}
	}
}

func TestMonthTracksNoOverlapShares(t *testing.T) {
	window := Window(date(2025, time.March, 15), ModeMonth)

	rng := rand.New(rand.NewSource(7))
	entries := make([]entry.Entry, 0, 40)
	for i := 0; i < 40; i++ {
		start := window[rng.Intn(len(window))]
		end := start.AddDate(0, 0, rng.Intn(6))
		entries = append(entries, testEntry(idFor(i), start, end))
	}

	placed := Month(entries, window)

	// No two entries with intersecting day ranges may share a track.
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			a, b := placed[i], placed[j]
			if a.Track != b.Track {
				continue
			}
			if a.Span.StartIndex <= b.Span.End() && b.Span.StartIndex <= a.Span.End() {
				t.Fatalf("%s and %s overlap on track %d (%+v vs %+v)",
					a.Entry.ID, b.Entry.ID, a.Track, a.Span, b.Span)
			}
		}
	}
}

func idFor(i int) string {
	return string(rune('a'+i%26)) + string(rune('0'+i/26))
}

func TestTracksDeterministicAndOrderIndependent(t *testing.T) {
	window := Window(date(2025, time.March, 15), ModeMonth)

	entries := []entry.Entry{
		testEntry("e1", date(2025, time.March, 3), date(2025, time.March, 5)),
		testEntry("e2", date(2025, time.March, 3), date(2025, time.March, 5)),
		testEntry("e3", date(2025, time.March, 4), date(2025, time.March, 4)),
		testEntry("e4", date(2025, time.March, 5), date(2025, time.March, 10)),
		testEntry("e5", date(2025, time.March, 10), date(2025, time.March, 10)),
	}

	want := trackByID(Month(entries, window))

	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 20; run++ {
		shuffled := make([]entry.Entry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := trackByID(Month(shuffled, window))
		for id, track := range want {
			if got[id] != track {
				t.Fatalf("run %d: %s track %d, want %d", run, id, got[id], track)
			}
		}
	}
}

func TestTracksTieBreakByID(t *testing.T) {
	window := Window(date(2025, time.March, 12), ModeWeek)

	// Identical spans: the lexicographically smaller id wins track 0.
	entries := []entry.Entry{
		testEntry("zz", date(2025, time.March, 11), date(2025, time.March, 12)),
		testEntry("aa", date(2025, time.March, 11), date(2025, time.March, 12)),
	}
	tracks := trackByID(Week(entries, window))
	if tracks["aa"] != 0 || tracks["zz"] != 1 {
		t.Fatalf("tie-break wrong: %v", tracks)
	}
}

func TestLongerSpanWinsLowTrack(t *testing.T) {
	window := Window(date(2025, time.March, 12), ModeWeek)

	entries := []entry.Entry{
		testEntry("short", date(2025, time.March, 10), date(2025, time.March, 10)),
		testEntry("long", date(2025, time.March, 10), date(2025, time.March, 14)),
	}
	tracks := trackByID(Week(entries, window))
	if tracks["long"] != 0 {
		t.Errorf("long track = %d, want 0", tracks["long"])
	}
	if tracks["short"] != 1 {
		t.Errorf("short track = %d, want 1", tracks["short"])
	}
}

func TestWeekTracksClampOverhang(t *testing.T) {
	window := Window(date(2025, time.March, 12), ModeWeek)

	// Both run past Sunday; the clamp keeps occupancy within columns 0–6.
	entries := []entry.Entry{
		testEntry("a", date(2025, time.March, 14), date(2025, time.March, 30)),
		testEntry("b", date(2025, time.March, 15), date(2025, time.March, 22)),
	}
	tracks := trackByID(Week(entries, window))
	if tracks["a"] == tracks["b"] {
		t.Fatalf("overlapping overhangs share track %d", tracks["a"])
	}
}

func TestAbsentEntriesDoNotParticipate(t *testing.T) {
	window := Window(date(2025, time.March, 12), ModeWeek)

	entries := []entry.Entry{
		testEntry("before", date(2025, time.March, 1), date(2025, time.March, 11)),
		testEntry("visible", date(2025, time.March, 10), date(2025, time.March, 12)),
	}
	placed := Week(entries, window)
	if len(placed) != 1 || placed[0].Entry.ID != "visible" {
		t.Fatalf("unexpected placements: %+v", placed)
	}
	if placed[0].Track != 0 {
		t.Fatalf("visible should take track 0, got %d", placed[0].Track)
	}
	if TrackCount(placed) != 1 {
		t.Fatalf("TrackCount = %d", TrackCount(placed))
	}
}
