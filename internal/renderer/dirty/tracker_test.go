package dirty

import "testing"

func TestTrackerEmpty(t *testing.T) {
	tr := NewTracker()

	if tr.Any() {
		t.Error("Any() = true for a fresh tracker")
	}
	if tr.Full() {
		t.Error("Full() = true for a fresh tracker")
	}
	if _, _, ok := tr.Range(); ok {
		t.Error("Range() ok = true for a fresh tracker")
	}
	if got := tr.LineDelta(); got != 0 {
		t.Errorf("LineDelta() = %d, want 0", got)
	}
}

func TestTrackerRecordWidens(t *testing.T) {
	tests := []struct {
		name      string
		records   [][3]int
		wantFirst int
		wantLast  int
		wantDelta int
	}{
		{
			name:      "single record",
			records:   [][3]int{{3, 5, 0}},
			wantFirst: 3, wantLast: 5,
		},
		{
			name:      "disjoint ranges union",
			records:   [][3]int{{8, 9, 0}, {2, 3, 0}},
			wantFirst: 2, wantLast: 9,
		},
		{
			name:      "contained range keeps bounds",
			records:   [][3]int{{1, 10, 0}, {4, 6, 0}},
			wantFirst: 1, wantLast: 10,
		},
		{
			name:      "deltas accumulate",
			records:   [][3]int{{0, 1, 1}, {5, 5, -2}, {2, 2, 1}},
			wantFirst: 0, wantLast: 5, wantDelta: 0,
		},
		{
			name:      "inverted bounds swap",
			records:   [][3]int{{7, 4, 0}},
			wantFirst: 4, wantLast: 7,
		},
		{
			name:      "negative rows clamp",
			records:   [][3]int{{-3, 2, 0}},
			wantFirst: 0, wantLast: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			for _, r := range tt.records {
				tr.Record(r[0], r[1], r[2])
			}

			first, last, ok := tr.Range()
			if !ok {
				t.Fatal("Range() ok = false after Record")
			}
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("Range() = %d..%d, want %d..%d", first, last, tt.wantFirst, tt.wantLast)
			}
			if got := tr.LineDelta(); got != tt.wantDelta {
				t.Errorf("LineDelta() = %d, want %d", got, tt.wantDelta)
			}
		})
	}
}

func TestTrackerForceFull(t *testing.T) {
	tr := NewTracker()
	tr.ForceFull()

	if !tr.Full() {
		t.Error("Full() = false after ForceFull")
	}
	if !tr.Any() {
		t.Error("Any() = false after ForceFull")
	}
	// ForceFull alone records no row range.
	if _, _, ok := tr.Range(); ok {
		t.Error("Range() ok = true with only a full-redraw request")
	}
}

func TestTrackerClear(t *testing.T) {
	tr := NewTracker()
	tr.Record(2, 4, 1)
	tr.ForceFull()

	tr.Clear()

	if tr.Any() || tr.Full() {
		t.Error("tracker still dirty after Clear")
	}
	if got := tr.LineDelta(); got != 0 {
		t.Errorf("LineDelta() = %d after Clear, want 0", got)
	}

	// Records after Clear start a fresh range.
	tr.Record(7, 7, 0)
	first, last, ok := tr.Range()
	if !ok || first != 7 || last != 7 {
		t.Errorf("Range() = %d..%d ok=%v, want 7..7 true", first, last, ok)
	}
}
