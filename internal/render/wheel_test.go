package render

import (
	"strings"
	"testing"

	"spinwheel/internal/wheel"
)

func testWheel(t *testing.T) *wheel.Wheel {
	t.Helper()
	w, err := wheel.New(wheel.DefaultConfig(), wheel.NopObserver{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.SetItems([]wheel.Item{
		{Label: "Alpha", Weight: 1},
		{Label: "Bravo", Weight: 1},
		{Label: "Charlie", Weight: 2},
	}); err != nil {
		t.Fatalf("SetItems: %v", err)
	}
	return w
}

func TestWheelGridShape(t *testing.T) {
	w := testWheel(t)

	const width, height = 41, 21
	out := Wheel(width, height, w)

	lines := strings.Split(out, "\n")
	if len(lines) != height {
		t.Fatalf("got %d lines, want %d", len(lines), height)
	}
}

func TestWheelTooSmall(t *testing.T) {
	w := testWheel(t)
	if out := Wheel(4, 2, w); out != "" {
		t.Fatalf("tiny grid should render empty, got %q", out)
	}
}

func TestWheelContainsHub(t *testing.T) {
	w := testWheel(t)
	out := Wheel(41, 21, w)
	if !strings.Contains(out, "+") {
		t.Fatal("rendered wheel has no hub marker")
	}
}

func TestLegendNamesCurrentItem(t *testing.T) {
	w := testWheel(t)
	legend := Legend(40, w)
	if !strings.Contains(legend, "Alpha") {
		t.Fatalf("legend %q should name the item under the pointer", legend)
	}
}
