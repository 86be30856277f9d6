package wheel

import "testing"

func TestResolveIndexNoItems(t *testing.T) {
	if got := ResolveIndex(nil, 0); got != NoItem {
		t.Errorf("expected NoItem sentinel, got %d", got)
	}
}

func TestResolveIndexBasic(t *testing.T) {
	angles, err := ComputeAngles([]Item{{Weight: 1}, {Weight: 1}}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ResolveIndex(angles, 0); got != 0 {
		t.Errorf("pointer 0 resolved to %d, want 0", got)
	}
	if got := ResolveIndex(angles, 180); got != 1 {
		t.Errorf("pointer 180 resolved to %d, want 1", got)
	}
	if got := ResolveIndex(angles, 359.9); got != 1 {
		t.Errorf("pointer 359.9 resolved to %d, want 1", got)
	}
}

func TestResolveIndexExhaustiveAndExclusive(t *testing.T) {
	// Every pointer angle maps to exactly one item, for an uneven tiling
	// at an arbitrary rotation.
	items := []Item{{Weight: 1}, {Weight: 2.5}, {Weight: 0.5}, {Weight: 3}}
	angles, err := ComputeAngles(items, 77.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for pointer := 0.0; pointer < 360; pointer += 0.5 {
		members := 0
		for _, r := range angles {
			if r.Contains(pointer) {
				members++
			}
		}
		if members != 1 {
			t.Fatalf("pointer %v contained by %d ranges, want exactly 1", pointer, members)
		}
		idx := ResolveIndex(angles, pointer)
		if !angles[idx].Contains(pointer) {
			t.Fatalf("resolved range %d does not contain pointer %v", idx, pointer)
		}
	}
}

func TestResolveIndexSeamOwnership(t *testing.T) {
	// The forced closing of the tiling can leave a sliver of rounding
	// error at the seam; the last range owns it rather than panicking or
	// returning NoItem.
	angles := []AngleRange{{Start: 0, End: 359.9999999}}
	if got := ResolveIndex(angles, 359.99999995); got != 0 {
		t.Errorf("seam sliver resolved to %d, want 0", got)
	}
}
