package timeline

import (
	"testing"
	"time"

	"github.com/upgantt/upgantt/pkg/extract"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alpha/", "alpha"},
		{"alpha", "alpha"},
		{"  Beta.Example// ", "beta.example"},
		{"gamma", "gamma"},
	}

	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	detected := []string{"alpha", "beta.example"}

	sel := Select([]string{"Alpha/", "alpha", "BETA.EXAMPLE"}, detected)

	if sel.Empty() {
		t.Fatal("Select() returned empty selection")
	}
	services := sel.Services()
	if len(services) != 2 {
		t.Fatalf("Services() = %v, want 2 entries", services)
	}
	if services[0] != "alpha" || services[1] != "beta.example" {
		t.Errorf("Services() = %v, want [alpha beta.example]", services)
	}
	if len(sel.Unmatched) != 0 {
		t.Errorf("Unmatched = %v, want none", sel.Unmatched)
	}
}

func TestSelect_UnmatchedDeduplicated(t *testing.T) {
	sel := Select([]string{"gone.example", "GONE.EXAMPLE/", "alpha"}, []string{"alpha"})

	if len(sel.Unmatched) != 1 {
		t.Fatalf("Unmatched = %v, want a single entry", sel.Unmatched)
	}
	if sel.Unmatched[0] != "gone.example" {
		t.Errorf("Unmatched[0] = %q, want caller's spelling", sel.Unmatched[0])
	}
}

func TestSelect_NothingMatches(t *testing.T) {
	sel := Select([]string{"gone"}, []string{"alpha"})
	if !sel.Empty() {
		t.Error("Select() expected empty selection")
	}
}

func TestSelection_Filter(t *testing.T) {
	events := []extract.Event{
		{Service: "alpha", Status: extract.StatusDown},
		{Service: "beta", Status: extract.StatusUp},
		{Service: "alpha", Status: extract.StatusUp},
	}

	sel := Select([]string{"ALPHA"}, []string{"alpha", "beta"})
	filtered := sel.Filter(events)

	if len(filtered) != 2 {
		t.Fatalf("Filter() returned %d events, want 2", len(filtered))
	}
	for _, ev := range filtered {
		if ev.Service != "alpha" {
			t.Errorf("Filter() kept event for %q", ev.Service)
		}
	}
}

func TestViewportFor_MinimumPadding(t *testing.T) {
	base := time.Date(2024, 4, 14, 12, 0, 0, 0, time.UTC)
	events := []extract.Event{
		{Service: "a", Status: extract.StatusDown, Time: base},
		{Service: "a", Status: extract.StatusUp, Time: base.Add(time.Hour)},
	}

	vp, ok := ViewportFor(events)
	if !ok {
		t.Fatal("ViewportFor() returned !ok")
	}

	// 2% of one hour is well under the 5 minute floor.
	if got := base.Sub(vp.Start); got != 5*time.Minute {
		t.Errorf("start padding = %v, want 5m", got)
	}
	if got := vp.End.Sub(base.Add(time.Hour)); got != 5*time.Minute {
		t.Errorf("end padding = %v, want 5m", got)
	}
}

func TestViewportFor_FractionalPadding(t *testing.T) {
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	events := []extract.Event{
		{Service: "a", Status: extract.StatusDown, Time: base},
		{Service: "a", Status: extract.StatusUp, Time: base.Add(240 * time.Hour)},
	}

	vp, ok := ViewportFor(events)
	if !ok {
		t.Fatal("ViewportFor() returned !ok")
	}

	want := time.Duration(float64(240*time.Hour) * 0.02)
	if got := base.Sub(vp.Start); got != want {
		t.Errorf("start padding = %v, want %v", got, want)
	}
}

func TestViewportFor_NoEvents(t *testing.T) {
	if _, ok := ViewportFor(nil); ok {
		t.Error("ViewportFor(nil) expected !ok")
	}
}

func TestBuildAll(t *testing.T) {
	base := time.Date(2024, 4, 14, 12, 0, 0, 0, time.UTC)
	vp := Viewport{Start: base.Add(-time.Hour), End: base.Add(3 * time.Hour)}

	events := []extract.Event{
		{Service: "alpha", Status: extract.StatusDown, Time: base},
		{Service: "alpha", Status: extract.StatusUp, Time: base.Add(time.Hour)},
	}

	intervals := BuildAll(events, vp)["alpha"]
	if len(intervals) != 3 {
		t.Fatalf("BuildAll() returned %d intervals, want 3: %+v", len(intervals), intervals)
	}

	want := []Interval{
		{Service: "alpha", Status: extract.StatusUp, Start: vp.Start, End: base},
		{Service: "alpha", Status: extract.StatusDown, Start: base, End: base.Add(time.Hour)},
		{Service: "alpha", Status: extract.StatusUp, Start: base.Add(time.Hour), End: vp.End},
	}
	for i := range want {
		if intervals[i] != want[i] {
			t.Errorf("intervals[%d] = %+v, want %+v", i, intervals[i], want[i])
		}
	}
}

func TestBuildAll_InitialStateIsOpposite(t *testing.T) {
	base := time.Date(2024, 4, 14, 12, 0, 0, 0, time.UTC)
	vp := Viewport{Start: base.Add(-time.Hour), End: base.Add(time.Hour)}

	events := []extract.Event{
		{Service: "alpha", Status: extract.StatusUp, Time: base},
	}

	intervals := BuildAll(events, vp)["alpha"]
	if len(intervals) != 2 {
		t.Fatalf("BuildAll() returned %d intervals, want 2", len(intervals))
	}
	if intervals[0].Status != extract.StatusDown {
		t.Errorf("state before first UP event = %q, want DOWN", intervals[0].Status)
	}
	if intervals[1].Status != extract.StatusUp {
		t.Errorf("state after first UP event = %q, want UP", intervals[1].Status)
	}
}

func TestBuildAll_DisjointAndOrdered(t *testing.T) {
	base := time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC)
	vp := Viewport{Start: base, End: base.Add(10 * time.Hour)}

	events := []extract.Event{
		{Service: "a", Status: extract.StatusDown, Time: base.Add(time.Hour)},
		{Service: "a", Status: extract.StatusUp, Time: base.Add(2 * time.Hour)},
		{Service: "a", Status: extract.StatusDown, Time: base.Add(5 * time.Hour)},
	}

	intervals := BuildAll(events, vp)["a"]
	for i, iv := range intervals {
		if !iv.End.After(iv.Start) {
			t.Errorf("intervals[%d] has non-positive duration: %+v", i, iv)
		}
		if i > 0 && !iv.Start.Equal(intervals[i-1].End) {
			t.Errorf("intervals[%d] not contiguous with previous: %+v", i, iv)
		}
	}
}

func TestBuildAll_EqualTimestampsCollapse(t *testing.T) {
	base := time.Date(2024, 4, 14, 12, 0, 0, 0, time.UTC)
	vp := Viewport{Start: base.Add(-time.Hour), End: base.Add(time.Hour)}

	events := []extract.Event{
		{Service: "a", Status: extract.StatusDown, Time: base},
		{Service: "a", Status: extract.StatusUp, Time: base},
	}

	intervals := BuildAll(events, vp)["a"]
	if len(intervals) != 2 {
		t.Fatalf("BuildAll() returned %d intervals, want 2: %+v", len(intervals), intervals)
	}
	// The later event at the same instant determines the state going forward.
	if intervals[1].Status != extract.StatusUp {
		t.Errorf("final status = %q, want UP", intervals[1].Status)
	}
}
