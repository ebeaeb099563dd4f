// Package dirty accumulates the damage mutations report between render
// passes: a single row range widened per request, the net change in line
// count, and a full-redraw flag. The tracker is write-mostly; the renderer
// reads it once per pass and clears it.
package dirty

// Tracker coalesces dirty-region requests into one pending row range.
type Tracker struct {
	first int
	last  int
	delta int
	any   bool
	full  bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record widens the pending range to include rows first..last and adds the
// request's line-count delta. Inverted bounds are swapped; negative rows
// clamp to zero.
func (t *Tracker) Record(first, last, lineDelta int) {
	if first > last {
		first, last = last, first
	}
	if first < 0 {
		first = 0
	}
	if last < 0 {
		last = 0
	}

	if !t.any {
		t.first, t.last = first, last
		t.any = true
	} else {
		if first < t.first {
			t.first = first
		}
		if last > t.last {
			t.last = last
		}
	}
	t.delta += lineDelta
}

// ForceFull marks the whole screen dirty. Used on resize, resume, and any
// state change the row range cannot describe.
func (t *Tracker) ForceFull() {
	t.full = true
}

// Full reports whether a full repaint was requested.
func (t *Tracker) Full() bool {
	return t.full
}

// Any reports whether anything is dirty at all.
func (t *Tracker) Any() bool {
	return t.any || t.full
}

// Range returns the pending row range. ok is false when no request was
// recorded since the last Clear.
func (t *Tracker) Range() (first, last int, ok bool) {
	return t.first, t.last, t.any
}

// LineDelta returns the net line-count change accumulated since the last
// Clear. Nonzero means rows shifted and row-range repainting is not
// sufficient.
func (t *Tracker) LineDelta() int {
	return t.delta
}

// Clear resets the tracker. Called at the end of every render pass.
func (t *Tracker) Clear() {
	*t = Tracker{}
}
