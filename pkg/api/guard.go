package api

import "sync/atomic"

// Guard discards responses from superseded fetches. Each refresh begins by
// taking a sequence number; when the response arrives, Accept reports
// whether that fetch is still the latest one issued. The original UI let
// whichever response resolved last win, which could leave a slow stale
// response painted over fresher data.
type Guard struct {
	seq atomic.Uint64
}

// Begin registers a new fetch and returns its sequence number.
func (g *Guard) Begin() uint64 {
	return g.seq.Add(1)
}

// Accept reports whether the fetch with the given sequence number is still
// the most recent one. Stale responses must be dropped by the caller.
func (g *Guard) Accept(seq uint64) bool {
	return g.seq.Load() == seq
}
